package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelter-outcomes/internal/adapters/storage"
	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/platform/config"
	"shelter-outcomes/internal/platform/logger"
	"shelter-outcomes/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New(logger.Options{})
		l.Error("invalid config", map[string]any{"error": err.Error()})
		logger.Sync(l)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	svc, closeSource, err := loadService(context.Background(), cfg, log)
	if err != nil {
		log.Error("dataset load failed", map[string]any{"error": err.Error(), "source": cfg.DatasetSource})
		logger.Sync(log)
		os.Exit(1)
	}
	defer closeSource()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Service: svc, Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		closeSource()
		logger.Sync(log)
		os.Exit(1)
	}
	log.Info("server stopped", nil)
	logger.Sync(log)
}

// loadService abre la fuente, carga el dataset una sola vez y registra las vistas custom.
func loadService(ctx context.Context, cfg config.Config, log logger.Logger) (*outcomes.Service, func(), error) {
	h, err := storage.Open(cfg.DatasetSource, storage.Options{Table: cfg.DatasetTable, FetchTimeout: cfg.FetchTimeout})
	if err != nil {
		return nil, nil, err
	}
	closeSource := func() { _ = h.Close() }

	ds, err := outcomes.Load(ctx, h.Source)
	if err != nil {
		closeSource()
		return nil, nil, err
	}
	log.Info("dataset loaded", map[string]any{
		"dataset_id": ds.ID,
		"source":     ds.Source,
		"kind":       string(h.Kind),
		"records":    ds.Len(),
	})

	opts := []outcomes.Option{outcomes.WithLogger(log)}
	if cfg.ViewsFile != "" {
		views, err := readCustomViews(cfg.ViewsFile)
		if err != nil {
			closeSource()
			return nil, nil, err
		}
		log.Info("custom views loaded", map[string]any{"file": cfg.ViewsFile, "views": len(views)})
		opts = append(opts, outcomes.WithCustomViews(views))
	}

	return outcomes.NewService(ds, opts...), closeSource, nil
}

func readCustomViews(path string) ([]outcomes.CustomView, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return outcomes.ParseCustomViews(f)
}
