package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkwell/blog-backend/internal/api"
	"github.com/inkwell/blog-backend/internal/api/session"
	"github.com/inkwell/blog-backend/internal/core/service"
	"github.com/inkwell/blog-backend/internal/infrastructure/config"
	"github.com/inkwell/blog-backend/internal/infrastructure/db/mongo"
	"github.com/inkwell/blog-backend/internal/infrastructure/db/redis"
	"github.com/inkwell/blog-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx := context.Background()

	mongoClient, db, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongo.NewUserRepository(db)
	postRepo := mongo.NewPostRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index bootstrap failed")
	}
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("post index bootstrap failed")
	}

	e := api.NewRouter(api.Deps{
		Users:        service.NewUserService(userRepo, log),
		Posts:        service.NewPostService(postRepo, log),
		Sessions:     redis.NewSessionStore(rdb),
		SessionCfg:   session.Config{TTL: cfg.Session.TTL, Secure: cfg.Production()},
		AllowOrigins: cfg.CORSOrigins,
		Mongo:        db,
		Redis:        rdb,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
