package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mercatto/commerce-api/internal/api"
	"github.com/mercatto/commerce-api/internal/infrastructure/config"
	"github.com/mercatto/commerce-api/internal/infrastructure/db/postgres"
	redisdb "github.com/mercatto/commerce-api/internal/infrastructure/db/redis"
	"github.com/mercatto/commerce-api/internal/infrastructure/queue"
	"github.com/mercatto/commerce-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	db, err := postgres.Connect(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, postgres.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, log, dispatcher)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("commerce api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
