package core

import "errors"

var (
	ErrInvalidArgs = errors.New("task invalid args")
	ErrNotFound    = errors.New("task not found")
)
