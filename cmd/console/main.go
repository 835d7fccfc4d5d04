package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/config"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/console"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/events"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/logger"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("failed to load config: %v", err)
	}

	// logs vão para stderr para não misturar com o menu
	log, err := logger.NewLogger(cfg.Log.Level, "console", "hotel-console")
	if err != nil {
		config.Exitf("failed to build logger: %v", err)
	}
	defer log.Sync()

	var opts []reservation.Option
	if cfg.Redis.Enabled() {
		pub := events.NewPublisher(events.NewRedisClient(cfg.Redis), cfg.Redis.Stream, log)
		defer pub.Close()
		opts = append(opts, reservation.WithObserver(pub))
	}
	hotel := reservation.NewHotel(reservation.DefaultCatalog(), reservation.RealClock{}, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.New(hotel, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("console stopped with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
