// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoring-api/config"
	"scoring-api/handler"
	"scoring-api/logger"
	"scoring-api/repository"
	"scoring-api/router"
	"scoring-api/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// The store is the single long-lived shared resource. An unreachable
	// backend is not fatal: the cache path degrades and the persistent
	// path reports per-call errors.
	store := repository.NewStore(config.AppConfig.Redis)
	defer store.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), config.AppConfig.Redis.Timeout)
	if err := store.Ping(pingCtx); err != nil {
		logger.Log.WithError(err).Warn("Store is unreachable at startup, continuing in degraded mode")
	} else {
		logger.Log.Info("Store connection established successfully")
	}
	pingCancel()

	// --- Wiring All Layers Together ---
	authService := service.NewAuthService(
		config.AppConfig.Auth.Salt,
		config.AppConfig.Auth.AdminSalt,
		config.AppConfig.Auth.AdminLogin,
	)
	scoringService := service.NewScoringService(store, config.AppConfig.Cache.ScoreTTL)
	methodHandler := handler.NewMethodHandler(authService, scoringService)

	r := router.NewRouter(methodHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
