package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hrostami/taskkeeper/internal/common"
	"github.com/hrostami/taskkeeper/internal/server/models"
)

type fakeTodosRepo struct {
	byOwner map[int64][]*models.Todo
	all     []*models.Todo

	deletedID      int64
	deletedOwnerID int64
	deleteErr      error
}

func (f *fakeTodosRepo) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	todo.ID = 10
	return todo, nil
}

func (f *fakeTodosRepo) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*models.Todo, error) {
	for _, td := range f.byOwner[ownerID] {
		if td.ID == id {
			return td, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeTodosRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Todo, error) {
	return f.byOwner[ownerID], nil
}

func (f *fakeTodosRepo) UpdateForOwner(ctx context.Context, todo *models.Todo) error {
	if _, err := f.GetByIDForOwner(ctx, todo.ID, todo.OwnerID); err != nil {
		return err
	}
	return nil
}

func (f *fakeTodosRepo) DeleteForOwner(ctx context.Context, id, ownerID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID, f.deletedOwnerID = id, ownerID
	return nil
}

func (f *fakeTodosRepo) ListAll(ctx context.Context) ([]*models.Todo, error) {
	return f.all, nil
}

func (f *fakeTodosRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func TestTodoService_OwnershipScoping(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{byOwner: map[int64][]*models.Todo{
		1: {{ID: 5, Title: "mine", OwnerID: 1}},
		2: {{ID: 6, Title: "theirs", OwnerID: 2}},
	}}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	got, err := s.GetForOwner(context.Background(), 5, 1)
	if err != nil {
		t.Fatalf("GetForOwner error: %v", err)
	}
	if got.Title != "mine" {
		t.Fatalf("unexpected todo: %+v", got)
	}

	// someone else's row is indistinguishable from a missing one
	if _, err := s.GetForOwner(context.Background(), 6, 1); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound for foreign todo, got %v", err)
	}
}

func TestTodoService_ListAllCrossesOwners(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{all: []*models.Todo{
		{ID: 1, OwnerID: 1},
		{ID: 2, OwnerID: 2},
	}}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	got, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected todos of all owners, got %+v", got)
	}
}

func TestTodoService_DeleteAny(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	if err := s.DeleteAny(context.Background(), 7); err != nil {
		t.Fatalf("DeleteAny error: %v", err)
	}
	if repo.deletedID != 7 {
		t.Fatalf("expected id 7 deleted, got %d", repo.deletedID)
	}
}

func TestTodoService_CreateAssignsID(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := NewTodoService(db, &fakeRepoManager{t: &fakeTodosRepo{}})

	td, err := s.Create(context.Background(), &models.Todo{Title: "x", OwnerID: 1})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if td.ID == 0 {
		t.Fatal("expected assigned id")
	}
}
