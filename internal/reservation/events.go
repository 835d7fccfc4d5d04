package reservation

import (
	"context"
	"time"
)

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationCancelled EventType = "reservation.cancelled"
)

type Event struct {
	Type        EventType   `json:"type"`
	Reservation Reservation `json:"reservation"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// Observer recebe os eventos depois que o lock do ledger já foi liberado.
// Falhas de entrega ficam a cargo do Observer; a reserva já está feita.
type Observer interface {
	Notify(ctx context.Context, ev Event)
}

type ObserverFunc func(ctx context.Context, ev Event)

func (f ObserverFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }
