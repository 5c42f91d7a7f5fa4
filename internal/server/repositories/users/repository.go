// Package users contains the credential store: persistence of account
// rows keyed by username.
package users

import (
	"context"

	"github.com/hrostami/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}
