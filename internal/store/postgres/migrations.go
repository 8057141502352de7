package postgres

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_tasks.up.sql
var createTasksUp string

// Migrate applies the schema on startup.
func (s *Store) Migrate() error {
	s.log.Debug("running task store migrations")

	if _, err := s.conn.Exec(createTasksUp); err != nil {
		return fmt.Errorf("apply tasks migration: %w", err)
	}

	s.log.Debug("task store migrations finished")
	return nil
}
