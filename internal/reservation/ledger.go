package reservation

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Ledger guarda as reservas ativas. Toda leitura e escrita passa pelo mesmo
// RWMutex, então checar disponibilidade e inserir é uma operação atômica.
type Ledger struct {
	mu      sync.RWMutex
	items   []Reservation // ordem de inserção
	byID    map[uuid.UUID]int
	catalog *Catalog
	clock   Clock
	newID   IDGenerator
}

func NewLedger(catalog *Catalog, clock Clock, newID IDGenerator) *Ledger {
	if clock == nil {
		clock = RealClock{}
	}
	if newID == nil {
		newID = uuid.NewRandom
	}
	return &Ledger{
		byID:    make(map[uuid.UUID]int),
		catalog: catalog,
		clock:   clock,
		newID:   newID,
	}
}

func (l *Ledger) bookedLocked(roomNumber int, r DateRange) bool {
	for _, existing := range l.items {
		if existing.Room.Number != roomNumber {
			continue
		}
		if existing.Range().Overlaps(r) {
			return true
		}
	}
	return false
}

// IsRoomBooked informa se alguma reserva ativa do quarto sobrepõe [checkIn, checkOut).
func (l *Ledger) IsRoomBooked(roomNumber int, checkIn, checkOut Date) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bookedLocked(roomNumber, DateRange{CheckIn: checkIn, CheckOut: checkOut})
}

// MakeReservation cria uma reserva, garantindo ausência de conflito.
func (l *Ledger) MakeReservation(ctx context.Context, guest Guest, roomNumber int, checkIn, checkOut Date) (Reservation, error) {
	if ctx.Err() != nil {
		return Reservation{}, ctx.Err()
	}

	r := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if err := r.Validate(); err != nil {
		return Reservation{}, err
	}

	room, ok := l.catalog.Lookup(roomNumber)
	if !ok {
		return Reservation{}, fmt.Errorf("%w: %d", ErrRoomNotFound, roomNumber)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.bookedLocked(roomNumber, r) {
		return Reservation{}, fmt.Errorf("%w: room %d %s", ErrRoomUnavailable, roomNumber, r)
	}

	id, err := l.newID()
	if err != nil {
		return Reservation{}, fmt.Errorf("generate reservation id: %w", err)
	}
	if _, dup := l.byID[id]; dup {
		return Reservation{}, fmt.Errorf("generate reservation id: %s already in use", id)
	}

	res := Reservation{
		ID:        id,
		Room:      room,
		Guest:     guest,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		CreatedAt: l.clock.Now(),
	}
	l.byID[id] = len(l.items)
	l.items = append(l.items, res)

	return res, nil
}

// CancelReservation remove a reserva. Um id desconhecido não é erro: retorna false.
func (l *Ledger) CancelReservation(ctx context.Context, id uuid.UUID) (Reservation, bool, error) {
	if ctx.Err() != nil {
		return Reservation{}, false, ctx.Err()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.byID[id]
	if !ok {
		return Reservation{}, false, nil
	}
	res := l.items[idx]

	l.items = append(l.items[:idx], l.items[idx+1:]...)
	delete(l.byID, id)
	for i := idx; i < len(l.items); i++ {
		l.byID[l.items[i].ID] = i
	}
	return res, true, nil
}

func (l *Ledger) Get(id uuid.UUID) (Reservation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, ok := l.byID[id]
	if !ok {
		return Reservation{}, false
	}
	return l.items[idx], true
}

// ListReservations devolve uma cópia das reservas na ordem de inserção.
func (l *Ledger) ListReservations() []Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Reservation, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) ReservationsForRoom(roomNumber int) []Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []Reservation{}
	for _, res := range l.items {
		if res.Room.Number == roomNumber {
			out = append(out, res)
		}
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// freeRooms filtra rooms mantendo só os livres em r, num único snapshot.
func (l *Ledger) freeRooms(rooms []Room, r DateRange) []Room {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []Room{}
	for _, room := range rooms {
		if !l.bookedLocked(room.Number, r) {
			out = append(out, room)
		}
	}
	return out
}
