package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/core"
	"task-tracker/internal/rest/handlers"
	"task-tracker/internal/store/memory"
	"task-tracker/internal/store/postgres"
	"task-tracker/web"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting task tracker server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := makeStorage(cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	svc := core.NewService(storage)

	staticFS, err := makeStaticFS(cfg)
	if err != nil {
		return fmt.Errorf("frontend assets: %w", err)
	}

	mux := http.NewServeMux()
	handlers.Register(mux, log, svc, cfg.HTTP.Timeout)
	mux.Handle("/", http.FileServerFS(staticFS))

	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)

	return nil
}

func makeStorage(cfg config.Config, log *slog.Logger) (core.Store, func(), error) {
	if cfg.DBAddress == "" {
		log.Warn("db_address not configured, tasks are kept in memory")
		return memory.New(), func() {}, nil
	}

	storage, err := postgres.New(log, cfg.DBAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if err := storage.Migrate(); err != nil {
		_ = storage.Close()
		return nil, nil, fmt.Errorf("failed to migrate db: %w", err)
	}

	closer := func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close db connection", "error", err)
		}
	}
	return storage, closer, nil
}

func makeStaticFS(cfg config.Config) (fs.FS, error) {
	if cfg.StaticDir != "" {
		return os.DirFS(cfg.StaticDir), nil
	}
	return web.Static()
}

func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
