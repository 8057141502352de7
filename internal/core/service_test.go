package core_test

import (
	"context"
	"errors"
	"testing"

	"task-tracker/internal/core"
	"task-tracker/internal/store/memory"
)

func newService() (*memory.Store, *core.Service) {
	store := memory.New()
	return store, core.NewService(store)
}

func mustCreate(t *testing.T, svc *core.Service, title, description string) core.Task {
	t.Helper()

	task, err := svc.Create(context.Background(), title, description)
	if err != nil {
		t.Fatalf("failed to prepare task: %v", err)
	}
	return task
}

func TestCreate_EmptyTitle(t *testing.T) {
	t.Parallel()

	store, svc := newService()

	_, err := svc.Create(context.Background(), "   ", "description")
	if !errors.Is(err, core.ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}

	tasks, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks after rejected create, got %d", len(tasks))
	}
}

func TestCreate_DefaultsToPending(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "task", "description")

	if task.Status != core.StatusPending {
		t.Fatalf("expected status %v, got %v", core.StatusPending, task.Status)
	}
	if task.ID <= 0 {
		t.Fatalf("expected positive id, got %d", task.ID)
	}
	if task.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}
}

func TestCreate_TrimsTitle(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "  trimmed  ", "")
	if task.Title != "trimmed" {
		t.Fatalf("expected title %q, got %q", "trimmed", task.Title)
	}
	if task.Description != nil {
		t.Fatalf("expected nil description, got %q", *task.Description)
	}
}

func TestList_RoundTrip(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	mustCreate(t, svc, "Buy milk", "2%")

	tasks, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected exactly one task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.Title != "Buy milk" {
		t.Fatalf("expected title %q, got %q", "Buy milk", got.Title)
	}
	if got.Description == nil || *got.Description != "2%" {
		t.Fatalf("expected description %q, got %v", "2%", got.Description)
	}
	if got.Status != core.StatusPending {
		t.Fatalf("expected status %v, got %v", core.StatusPending, got.Status)
	}
	if got.ID <= 0 || got.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be set, got id=%d created_at=%v", got.ID, got.CreatedAt)
	}
}

func TestUpdate_EmptyTitle(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "task", "description")

	_, err := svc.Update(context.Background(), task.ID, "   ", "description", core.StatusPending)
	if !errors.Is(err, core.ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}

	got, err := svc.Get(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "task" {
		t.Fatalf("expected title untouched after rejected update, got %q", got.Title)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "task", "")

	_, err := svc.Update(context.Background(), task.ID, "task", "", core.Status("ARCHIVED"))
	if !errors.Is(err, core.ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	store, svc := newService()

	mustCreate(t, svc, "task", "")

	_, err := svc.Update(context.Background(), 999, "renamed", "", core.StatusPending)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	tasks, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected collection unchanged, got %d tasks", len(tasks))
	}
}

func TestUpdate_PreservesCreatedAt(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "task", "description")

	updated, err := svc.Update(context.Background(), task.ID, "renamed", "new description", core.StatusCompleted)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Fatalf("expected created_at %v, got %v", task.CreatedAt, updated.CreatedAt)
	}
	if updated.ID != task.ID {
		t.Fatalf("expected id %d, got %d", task.ID, updated.ID)
	}
	if updated.Title != "renamed" {
		t.Fatalf("expected title %q, got %q", "renamed", updated.Title)
	}
	if updated.Status != core.StatusCompleted {
		t.Fatalf("expected status %v, got %v", core.StatusCompleted, updated.Status)
	}
}

func TestComplete_Idempotent(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "task", "")

	first, err := svc.Complete(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("first Complete returned error: %v", err)
	}
	if first.Status != core.StatusCompleted {
		t.Fatalf("expected status %v, got %v", core.StatusCompleted, first.Status)
	}

	second, err := svc.Complete(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("second Complete returned error: %v", err)
	}
	if second.Status != core.StatusCompleted {
		t.Fatalf("expected status %v, got %v", core.StatusCompleted, second.Status)
	}
}

func TestComplete_OnlyTouchesStatus(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "task", "description")

	completed, err := svc.Complete(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if completed.Title != task.Title {
		t.Fatalf("expected title %q, got %q", task.Title, completed.Title)
	}
	if completed.Description == nil || *completed.Description != *task.Description {
		t.Fatalf("expected description untouched, got %v", completed.Description)
	}
	if !completed.CreatedAt.Equal(task.CreatedAt) {
		t.Fatalf("expected created_at %v, got %v", task.CreatedAt, completed.CreatedAt)
	}
}

func TestComplete_NotFound(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	_, err := svc.Complete(context.Background(), 999)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_ThenRepeat(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	task := mustCreate(t, svc, "task", "")

	if err := svc.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	tasks, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list after delete, got %d tasks", len(tasks))
	}

	if err := svc.Delete(context.Background(), task.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestGet_InvalidID(t *testing.T) {
	t.Parallel()

	_, svc := newService()

	_, err := svc.Get(context.Background(), 0)
	if !errors.Is(err, core.ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}
}
