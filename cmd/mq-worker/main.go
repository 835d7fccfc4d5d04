package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/config"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/events"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/logger"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/mq"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-mq-worker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// domínio (mesmo Hotel do servidor gRPC)
	var opts []reservation.Option
	if cfg.Redis.Enabled() {
		pub := events.NewPublisher(events.NewRedisClient(cfg.Redis), cfg.Redis.Stream, log)
		defer pub.Close()
		opts = append(opts, reservation.WithObserver(pub))
	}
	hotel := reservation.NewHotel(reservation.DefaultCatalog(), reservation.RealClock{}, opts...)

	// conexão com RabbitMQ
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("failed to open channel", zap.Error(err))
	}
	defer ch.Close()

	if err := mq.DeclareQueue(ch, cfg.Queue); err != nil {
		log.Fatal("failed to declare queue", zap.String("queue", cfg.Queue), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := mq.NewWorker(ch, cfg.Queue, mq.NewDispatcher(hotel, log), cfg.RequestTimeout, log)
	if err := worker.Run(ctx); err != nil {
		log.Error("mq worker stopped with error", zap.Error(err))
		return
	}
	log.Info("mq-worker stopped")
}
