package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GargSheetal/travel-agency-app/internal/catalog"
	"github.com/GargSheetal/travel-agency-app/internal/config"
	"github.com/GargSheetal/travel-agency-app/internal/handlers"
	"github.com/GargSheetal/travel-agency-app/internal/router"
	"github.com/GargSheetal/travel-agency-app/internal/service"
	"github.com/GargSheetal/travel-agency-app/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.App.LogPath, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	flights, err := catalog.Load(cfg.Data.FlightsFile)
	if err != nil {
		zlog.Fatal("Failed to load flight dataset", zap.Error(err))
	}
	zlog.Info("Flight dataset loaded",
		zap.String("file", cfg.Data.FlightsFile),
		zap.Int("flights", len(flights)))

	bookingService := service.NewBookingService(flights)
	h := handlers.NewHandler(bookingService)
	r := router.SetupRouter(h)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("API server starting", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exited")
}
