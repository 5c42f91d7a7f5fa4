package todos

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hrostami/taskkeeper/internal/common"
	"github.com/hrostami/taskkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var todoCols = []string{"id", "title", "description", "priority", "complete", "owner_id"}

func TestCreate_ReturnsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+todos`).
		WithArgs("Learn to code!", "Need to learn everyday!", 5, false, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

	todo := &models.Todo{
		Title:       "Learn to code!",
		Description: "Need to learn everyday!",
		Priority:    5,
		OwnerID:     1,
	}
	got, err := repo.Create(context.Background(), todo)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 10 {
		t.Fatalf("expected id 10, got %d", got.ID)
	}
}

func TestGetByIDForOwner_ScopesByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*FROM\s+todos\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(10), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDForOwner(context.Background(), 10, 2)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("foreign todo must be invisible, got %v", err)
	}
}

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(todoCols).
		AddRow(int64(1), "a", "", 1, false, int64(1)).
		AddRow(int64(2), "b", "", 2, true, int64(1))
	mock.ExpectQuery(`SELECT\s+.*FROM\s+todos\s+WHERE\s+owner_id\s*=\s*\$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[1].Complete != true {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestUpdateForOwner_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+todos\s+SET`).
		WithArgs("t", "d", 3, true, int64(5), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateForOwner(context.Background(), &models.Todo{
		ID: 5, Title: "t", Description: "d", Priority: 3, Complete: true, OwnerID: 9,
	})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteForOwner_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+todos\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteForOwner(context.Background(), 3, 1); err != nil {
		t.Fatalf("DeleteForOwner error: %v", err)
	}
}

func TestListAll_IgnoresOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(todoCols).
		AddRow(int64(1), "a", "", 1, false, int64(1)).
		AddRow(int64(2), "b", "", 2, false, int64(7))
	mock.ExpectQuery(`SELECT\s+.*FROM\s+todos\s+ORDER\s+BY\s+id`).
		WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 2 || got[1].OwnerID != 7 {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+todos\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
