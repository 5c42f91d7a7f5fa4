package repomanager

import (
	"context"
	"database/sql"

	"github.com/hrostami/taskkeeper/internal/dbx"
	"github.com/hrostami/taskkeeper/internal/server/repositories/todos"
	"github.com/hrostami/taskkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle that can be either
// the pooled connection or an open transaction, so services decide the scope
// per operation.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
}
