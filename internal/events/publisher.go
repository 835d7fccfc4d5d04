package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/config"
	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

const publishTimeout = 2 * time.Second

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Publisher grava eventos de reserva num Redis Stream (XADD).
type Publisher struct {
	client *redis.Client
	stream string
	log    *zap.Logger
}

func NewPublisher(client *redis.Client, stream string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{client: client, stream: stream, log: log}
}

// Publish adiciona o evento ao stream e devolve o ID gerado pelo Redis.
func (p *Publisher) Publish(ctx context.Context, ev reservation.Event) (string, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"type":           string(ev.Type),
			"reservation_id": ev.Reservation.ID.String(),
			"room":           strconv.Itoa(ev.Reservation.Room.Number),
			"data":           string(data),
			"timestamp":      strconv.FormatInt(ev.OccurredAt.Unix(), 10),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return id, nil
}

// Notify implementa reservation.Observer. A reserva já foi gravada, então
// uma falha aqui só vira log.
func (p *Publisher) Notify(ctx context.Context, ev reservation.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	id, err := p.Publish(ctx, ev)
	if err != nil {
		p.log.Warn("failed to publish reservation event",
			zap.String("type", string(ev.Type)),
			zap.String("reservation_id", ev.Reservation.ID.String()),
			zap.Error(err))
		return
	}
	p.log.Debug("reservation event published",
		zap.String("type", string(ev.Type)),
		zap.String("stream_id", id))
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
