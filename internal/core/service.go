package core

import (
	"context"
	"strings"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Task, error) {
	if id <= 0 {
		return Task{}, ErrInvalidArgs
	}
	return s.store.Get(ctx, id)
}

// Create adds a new task. New tasks always start PENDING: any
// caller-supplied status is ignored on this path.
func (s *Service) Create(ctx context.Context, title, description string) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrInvalidArgs
	}
	return s.store.Create(ctx, strings.TrimSpace(title), strings.TrimSpace(description))
}

// Update replaces the mutable fields of a task. ID and created_at
// never change; the store keeps the original created_at.
func (s *Service) Update(ctx context.Context, id int64, title, description string, status Status) (Task, error) {
	title = strings.TrimSpace(title)
	if id <= 0 || title == "" {
		return Task{}, ErrInvalidArgs
	}
	if !IsValidStatus(status) {
		return Task{}, ErrInvalidArgs
	}

	var desc *string
	if d := strings.TrimSpace(description); d != "" {
		desc = &d
	}

	return s.store.Update(ctx, Task{
		ID:          id,
		Title:       title,
		Description: desc,
		Status:      status,
	})
}

// Complete marks a task COMPLETED and touches nothing else.
// Completing an already-completed task is a no-op success.
func (s *Service) Complete(ctx context.Context, id int64) (Task, error) {
	if id <= 0 {
		return Task{}, ErrInvalidArgs
	}
	return s.store.Complete(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgs
	}
	return s.store.Delete(ctx, id)
}
