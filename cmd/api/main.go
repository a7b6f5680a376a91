package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	pg "club-deportivo/internal/adapters/storage/postgres"
	"club-deportivo/internal/config"
	"club-deportivo/internal/domain/pagos"
	"club-deportivo/internal/platform/logger"
	"club-deportivo/internal/router"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	l, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    "club-deportivo",
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	opts := router.Options{
		Logger:   l,
		Politica: pagos.Politica{ActividadesParaMorosos: cfg.ActividadesParaMorosos},
	}

	if cfg.DSN != "" {
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			l.Fatal("postgres open", zap.Error(err))
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.EnsureSchema(ctx, db); err != nil {
			cancel()
			l.Fatal("postgres schema", zap.Error(err))
		}
		cancel()

		opts.DB = db
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	l.Info("starting server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		l.Fatal("server error", zap.Error(err))
	}
}
