package main

import (
	"context"
	"log"
	"os"

	"github.com/GargSheetal/travel-agency-app/internal/catalog"
	"github.com/GargSheetal/travel-agency-app/internal/config"
	"github.com/GargSheetal/travel-agency-app/internal/menu"
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

	bookingService := service.NewBookingService(flights)
	session := menu.New(bookingService, os.Stdin, os.Stdout, zlog, cfg.Data.MaxPromptAttempts)

	res, err := session.Run(context.Background())
	if err != nil {
		zlog.Error("Booking session ended without a reservation", zap.Error(err))
		os.Exit(1)
	}
	zlog.Info("Booking session finished",
		zap.String("reservationId", res.ID()),
		zap.String("flight", res.Flight().FlightNumber))
}
