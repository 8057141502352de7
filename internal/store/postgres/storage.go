package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"task-tracker/internal/core"
)

type Store struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*Store, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &Store{log: log, conn: db}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) List(ctx context.Context) ([]core.Task, error) {
	const q = `
		SELECT id, title, description, status, created_at
		FROM tasks
		ORDER BY id ASC;
	`

	out := []core.Task{}
	if err := s.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id int64) (core.Task, error) {
	const q = `
		SELECT id, title, description, status, created_at
		FROM tasks
		WHERE id = $1;
	`

	var t core.Task
	if err := s.conn.GetContext(ctx, &t, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrNotFound
		}
		return core.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, title, description string) (core.Task, error) {
	if title == "" {
		return core.Task{}, core.ErrInvalidArgs
	}

	const q = `
		INSERT INTO tasks(title, description, status)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, title, description, status, created_at;
	`

	var t core.Task
	err := s.conn.QueryRowxContext(ctx, q, title, description, string(core.StatusPending)).
		Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt)

	if err != nil {
		if isCheckViolation(err) {
			return core.Task{}, core.ErrInvalidArgs
		}
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (s *Store) Update(ctx context.Context, t core.Task) (core.Task, error) {
	if t.ID <= 0 || t.Title == "" {
		return core.Task{}, core.ErrInvalidArgs
	}

	// created_at is never touched here, which keeps it immutable.
	const q = `
		UPDATE tasks
		SET title = $2,
		    description = NULLIF($3, ''),
		    status = $4
		WHERE id = $1
		RETURNING id, title, description, status, created_at;
	`

	var desc string
	if t.Description != nil {
		desc = *t.Description
	}

	var out core.Task
	if err := s.conn.GetContext(ctx, &out, q, t.ID, t.Title, desc, string(t.Status)); err != nil {
		if isCheckViolation(err) {
			return core.Task{}, core.ErrInvalidArgs
		}
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrNotFound
		}
		return core.Task{}, fmt.Errorf("update task: %w", err)
	}
	return out, nil
}

func (s *Store) Complete(ctx context.Context, id int64) (core.Task, error) {
	const q = `
		UPDATE tasks
		SET status = $2
		WHERE id = $1
		RETURNING id, title, description, status, created_at;
	`

	var out core.Task
	if err := s.conn.GetContext(ctx, &out, q, id, string(core.StatusCompleted)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, core.ErrNotFound
		}
		return core.Task{}, fmt.Errorf("complete task: %w", err)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM tasks WHERE id = $1`

	res, err := s.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrNotFound
	}
	return nil
}

// pg helpers

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}
