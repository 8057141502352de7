package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"task-tracker/internal/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, svc *core.Service, timeout time.Duration) {
	// ping
	mux.Handle("GET /api/ping", NewPingHandler(log, svc, timeout))

	// tasks
	mux.Handle("GET /api/tasks", NewListTasksHandler(log, svc, timeout))
	mux.Handle("POST /api/tasks", NewCreateTaskHandler(log, svc, timeout))
	mux.Handle("GET /api/tasks/{id}", NewGetTaskHandler(log, svc, timeout))
	mux.Handle("PUT /api/tasks/{id}", NewUpdateTaskHandler(log, svc, timeout))
	mux.Handle("PATCH /api/tasks/{id}/complete", NewCompleteTaskHandler(log, svc, timeout))
	mux.Handle("DELETE /api/tasks/{id}", NewDeleteTaskHandler(log, svc, timeout))
}
