// Package memory is a mutex-guarded map-backed task store. It backs
// every test and lets the server run without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"task-tracker/internal/core"
)

type Store struct {
	mu sync.RWMutex

	nextID int64
	tasks  map[int64]core.Task
}

func New() *Store {
	return &Store{
		nextID: 1,
		tasks:  make(map[int64]core.Task),
	}
}

func clone(t core.Task) core.Task {
	out := t
	if t.Description != nil {
		d := *t.Description
		out.Description = &d
	}
	return out
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) List(context.Context) ([]core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, clone(t))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (s *Store) Get(_ context.Context, id int64) (core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return core.Task{}, core.ErrNotFound
	}
	return clone(t), nil
}

func (s *Store) Create(_ context.Context, title, description string) (core.Task, error) {
	if title == "" {
		return core.Task{}, core.ErrInvalidArgs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	t := core.Task{
		ID:        id,
		Title:     title,
		Status:    core.StatusPending,
		CreatedAt: time.Now(),
	}
	if description != "" {
		t.Description = &description
	}
	s.tasks[id] = t

	return clone(t), nil
}

func (s *Store) Update(_ context.Context, t core.Task) (core.Task, error) {
	if t.ID <= 0 || t.Title == "" || !core.IsValidStatus(t.Status) {
		return core.Task{}, core.ErrInvalidArgs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[t.ID]
	if !ok {
		return core.Task{}, core.ErrNotFound
	}

	t.CreatedAt = current.CreatedAt
	s.tasks[t.ID] = clone(t)

	return clone(t), nil
}

func (s *Store) Complete(_ context.Context, id int64) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return core.Task{}, core.ErrNotFound
	}

	t.Status = core.StatusCompleted
	s.tasks[id] = t

	return clone(t), nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return core.ErrNotFound
	}

	delete(s.tasks, id)
	return nil
}
