package core

import "context"

// Store is the authoritative task collection. It owns identity
// assignment and created_at stamping.
type Store interface {
	Ping(ctx context.Context) error

	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id int64) (Task, error)
	Create(ctx context.Context, title, description string) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Complete(ctx context.Context, id int64) (Task, error)
	Delete(ctx context.Context, id int64) error
}
