package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devconnect-app/backend/internal/auth"
	"github.com/devconnect-app/backend/internal/config"
	"github.com/devconnect-app/backend/internal/database"
	"github.com/devconnect-app/backend/internal/handlers"
	"github.com/devconnect-app/backend/internal/logger"
	"github.com/devconnect-app/backend/internal/server"
	"github.com/devconnect-app/backend/internal/service"
	"github.com/devconnect-app/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logg := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.New(cfg, logg)
	if err != nil {
		logg.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userStore := store.NewUserStore(db.GetDB())
	postStore := store.NewPostStore(db.GetDB())
	authSvc := service.NewAuthService(userStore)
	postSvc := service.NewPostService(postStore, userStore)

	handler := handlers.NewHandler(authSvc, postSvc, tokens, logg)
	srv := server.New(cfg, db, handler, tokens, logg)

	go func() {
		logg.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("forced shutdown", "error", err)
	}
	if err := db.Close(); err != nil {
		logg.Error("closing database", "error", err)
	}

	logg.Info("server stopped")
}
