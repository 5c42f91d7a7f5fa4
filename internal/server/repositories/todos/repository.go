// Package todos persists task rows. Regular operations are scoped to an
// owner; the All/Delete pair serves the admin surface and ignores ownership.
package todos

import (
	"context"

	"github.com/hrostami/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	GetByIDForOwner(ctx context.Context, id, ownerID int64) (*models.Todo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Todo, error)
	UpdateForOwner(ctx context.Context, todo *models.Todo) error
	DeleteForOwner(ctx context.Context, id, ownerID int64) error

	// admin operations, not ownership-scoped
	ListAll(ctx context.Context) ([]*models.Todo, error)
	Delete(ctx context.Context, id int64) error
}
