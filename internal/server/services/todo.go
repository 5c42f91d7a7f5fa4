package services

import (
	"context"
	"database/sql"

	"github.com/hrostami/taskkeeper/internal/server/models"
	"github.com/hrostami/taskkeeper/internal/server/repositories/repomanager"
)

// TodoService exposes task operations. The ForOwner methods enforce the
// ownership rule at the query level: a caller only ever sees rows whose
// owner_id matches their own user id. ListAll and DeleteAny back the
// admin surface and skip that rule; role checks happen upstream.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

func (s *TodoService) ListForOwner(ctx context.Context, ownerID int64) ([]*models.Todo, error) {
	return s.repomanager.Todos(s.db).ListByOwner(ctx, ownerID)
}

func (s *TodoService) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Todo, error) {
	return s.repomanager.Todos(s.db).GetByIDForOwner(ctx, id, ownerID)
}

func (s *TodoService) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	return s.repomanager.Todos(s.db).Create(ctx, todo)
}

func (s *TodoService) UpdateForOwner(ctx context.Context, todo *models.Todo) error {
	return s.repomanager.Todos(s.db).UpdateForOwner(ctx, todo)
}

func (s *TodoService) DeleteForOwner(ctx context.Context, id, ownerID int64) error {
	return s.repomanager.Todos(s.db).DeleteForOwner(ctx, id, ownerID)
}

// ListAll returns every todo regardless of owner.
func (s *TodoService) ListAll(ctx context.Context) ([]*models.Todo, error) {
	return s.repomanager.Todos(s.db).ListAll(ctx)
}

// DeleteAny deletes a todo by id regardless of owner.
func (s *TodoService) DeleteAny(ctx context.Context, id int64) error {
	return s.repomanager.Todos(s.db).Delete(ctx, id)
}
