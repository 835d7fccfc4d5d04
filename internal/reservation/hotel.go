package reservation

import (
	"context"

	"github.com/google/uuid"
)

// Hotel junta catálogo e ledger e expõe as operações usadas pelos
// transportes (gRPC, fila, console). Cada servidor constrói o seu.
type Hotel struct {
	catalog  *Catalog
	ledger   *Ledger
	clock    Clock
	observer Observer
}

type Option func(*hotelOptions)

type hotelOptions struct {
	newID    IDGenerator
	observer Observer
}

func WithIDGenerator(gen IDGenerator) Option {
	return func(o *hotelOptions) { o.newID = gen }
}

func WithObserver(obs Observer) Option {
	return func(o *hotelOptions) { o.observer = obs }
}

func NewHotel(catalog *Catalog, clock Clock, opts ...Option) *Hotel {
	var o hotelOptions
	for _, opt := range opts {
		opt(&o)
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Hotel{
		catalog:  catalog,
		ledger:   NewLedger(catalog, clock, o.newID),
		clock:    clock,
		observer: o.observer,
	}
}

func (h *Hotel) Catalog() *Catalog { return h.catalog }

func (h *Hotel) Ledger() *Ledger { return h.ledger }

func (h *Hotel) ListRooms() []Room {
	return h.catalog.Rooms()
}

// GetAvailableRooms retorna, na ordem do catálogo, os quartos sem reserva
// que sobreponha [checkIn, checkOut).
func (h *Hotel) GetAvailableRooms(ctx context.Context, checkIn, checkOut Date) ([]Room, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	r := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return h.ledger.freeRooms(h.catalog.rooms, r), nil
}

func (h *Hotel) MakeReservation(ctx context.Context, guest Guest, roomNumber int, checkIn, checkOut Date) (Reservation, error) {
	res, err := h.ledger.MakeReservation(ctx, guest, roomNumber, checkIn, checkOut)
	if err != nil {
		return Reservation{}, err
	}
	h.notify(ctx, EventReservationCreated, res)
	return res, nil
}

func (h *Hotel) CancelReservation(ctx context.Context, id uuid.UUID) (bool, error) {
	res, ok, err := h.ledger.CancelReservation(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	h.notify(ctx, EventReservationCancelled, res)
	return true, nil
}

func (h *Hotel) ListReservations(ctx context.Context) ([]Reservation, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return h.ledger.ListReservations(), nil
}

func (h *Hotel) notify(ctx context.Context, t EventType, res Reservation) {
	if h.observer == nil {
		return
	}
	h.observer.Notify(ctx, Event{Type: t, Reservation: res, OccurredAt: h.clock.Now()})
}
