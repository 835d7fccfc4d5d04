package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/config"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/events"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/logger"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/rpc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var opts []reservation.Option
	if cfg.Redis.Enabled() {
		pub := events.NewPublisher(events.NewRedisClient(cfg.Redis), cfg.Redis.Stream, log)
		defer pub.Close()
		opts = append(opts, reservation.WithObserver(pub))
		log.Info("publishing reservation events", zap.String("redis", cfg.Redis.Addr), zap.String("stream", cfg.Redis.Stream))
	}

	hotel := reservation.NewHotel(reservation.DefaultCatalog(), reservation.RealClock{}, opts...)

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Fatal("failed to listen", zap.String("addr", cfg.Addr), zap.Error(err))
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(rpc.LoggingInterceptor(log)))
	rpc.RegisterReservationServiceServer(grpcServer, rpc.NewServer(hotel, log))

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// graceful shutdown
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	<-stopCh
	log.Info("shutting down server...")
	grpcServer.GracefulStop()
	log.Info("server stopped")
}
