package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (o *recordingObserver) Notify(_ context.Context, ev Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

func newTestHotel(t *testing.T, opts ...Option) *Hotel {
	t.Helper()
	catalog, err := NewCatalog([]Room{
		{Number: 101, Type: "Single", Rate: 100},
		{Number: 102, Type: "Double", Rate: 150},
	})
	require.NoError(t, err)
	opts = append([]Option{WithIDGenerator(sequentialIDs())}, opts...)
	return NewHotel(catalog, fixedClock{now: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}, opts...)
}

func roomNumbers(rooms []Room) []int {
	out := make([]int, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Number)
	}
	return out
}

// Cenário completo: reserva, consulta, conflito, back-to-back e cancelamento.
func TestHotel_WorkedExample(t *testing.T) {
	ctx := context.Background()
	h := newTestHotel(t)

	first, err := h.MakeReservation(ctx, testGuest, 101, day(1), day(5))
	require.NoError(t, err)

	avail, err := h.GetAvailableRooms(ctx, day(2), day(3))
	require.NoError(t, err)
	assert.Equal(t, []int{102}, roomNumbers(avail))

	_, err = h.MakeReservation(ctx, testGuest, 101, day(4), day(6))
	require.ErrorIs(t, err, ErrRoomUnavailable)

	_, err = h.MakeReservation(ctx, testGuest, 101, day(5), day(7))
	require.NoError(t, err)

	ok, err := h.CancelReservation(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)

	avail, err = h.GetAvailableRooms(ctx, day(2), day(3))
	require.NoError(t, err)
	assert.Equal(t, []int{101, 102}, roomNumbers(avail))
}

func TestHotel_GetAvailableRooms(t *testing.T) {
	ctx := context.Background()
	h := newTestHotel(t)
	_, err := h.MakeReservation(ctx, testGuest, 102, day(10), day(14))
	require.NoError(t, err)

	tests := []struct {
		name     string
		checkIn  Date
		checkOut Date
		want     []int
	}{
		{name: "no overlap before", checkIn: day(1), checkOut: day(10), want: []int{101, 102}},
		{name: "overlap", checkIn: day(12), checkOut: day(20), want: []int{101}},
		{name: "no overlap after", checkIn: day(14), checkOut: day(15), want: []int{101, 102}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.GetAvailableRooms(ctx, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, roomNumbers(got))
			for _, room := range got {
				assert.False(t, h.Ledger().IsRoomBooked(room.Number, tt.checkIn, tt.checkOut))
			}
		})
	}
}

func TestHotel_InvalidDateRange(t *testing.T) {
	ctx := context.Background()
	h := newTestHotel(t)

	_, err := h.GetAvailableRooms(ctx, day(3), day(3))
	require.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = h.GetAvailableRooms(ctx, day(4), day(3))
	require.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = h.MakeReservation(ctx, testGuest, 101, day(3), day(3))
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestHotel_ListRooms(t *testing.T) {
	h := NewHotel(DefaultCatalog(), nil)
	assert.Equal(t, []int{101, 102, 103, 104, 105}, roomNumbers(h.ListRooms()))
}

func TestHotel_ListReservations(t *testing.T) {
	ctx := context.Background()
	h := newTestHotel(t)

	got, err := h.ListReservations(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	a, err := h.MakeReservation(ctx, testGuest, 102, day(1), day(2))
	require.NoError(t, err)
	b, err := h.MakeReservation(ctx, testGuest, 101, day(1), day(2))
	require.NoError(t, err)

	got, err = h.ListReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Reservation{a, b}, got)

	again, err := h.ListReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestHotel_ObserverReceivesEvents(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	h := newTestHotel(t, WithObserver(obs))

	res, err := h.MakeReservation(ctx, testGuest, 101, day(1), day(2))
	require.NoError(t, err)

	_, err = h.MakeReservation(ctx, testGuest, 101, day(1), day(2))
	require.Error(t, err)

	ok, err := h.CancelReservation(ctx, uuid.New())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = h.CancelReservation(ctx, res.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, obs.events, 2)
	assert.Equal(t, EventReservationCreated, obs.events[0].Type)
	assert.Equal(t, res, obs.events[0].Reservation)
	assert.Equal(t, EventReservationCancelled, obs.events[1].Type)
	assert.Equal(t, res.ID, obs.events[1].Reservation.ID)
}

func TestHotel_ObserverFunc(t *testing.T) {
	var got []EventType
	h := newTestHotel(t, WithObserver(ObserverFunc(func(_ context.Context, ev Event) {
		got = append(got, ev.Type)
	})))

	_, err := h.MakeReservation(context.Background(), testGuest, 102, day(1), day(3))
	require.NoError(t, err)
	assert.Equal(t, []EventType{EventReservationCreated}, got)
}

func TestHotel_ContextDone(t *testing.T) {
	h := newTestHotel(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.GetAvailableRooms(ctx, day(1), day(2))
	require.ErrorIs(t, err, context.Canceled)
	_, err = h.ListReservations(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = h.CancelReservation(ctx, uuid.New())
	require.ErrorIs(t, err, context.Canceled)
}
