package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	"github.com/Wisofer/GlowNic-sub000/internal/config"
	dbpkg "github.com/Wisofer/GlowNic-sub000/internal/db"
	"github.com/Wisofer/GlowNic-sub000/internal/events"
	"github.com/Wisofer/GlowNic-sub000/internal/routes"
	"github.com/Wisofer/GlowNic-sub000/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	// Redis é opcional: sem endereço, eventos viram no-op.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, events may be lost", "error", err)
		}
		defer rdb.Close()
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Redis:     rdb,
		Config:    cfg,
		Audit:     dispatcher,
		Publisher: events.NewFromConfig(rdb, cfg.EventsChannel, log),
		Clock:     timezone.SystemClock{},
		Log:       log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	// depois do servidor: nenhuma requisição nova enfileira auditoria
	if err := dispatcher.Close(ctx); err != nil {
		log.Warn("audit queue not drained", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("server stopped")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
