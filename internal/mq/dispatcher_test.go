package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(reservation.NewHotel(reservation.DefaultCatalog(), nil), zap.NewNop())
}

func envelope(t *testing.T, typ CommandType, payload any) []byte {
	t.Helper()
	env := CommandEnvelope{Type: typ}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		env.Payload = raw
	}
	body, err := json.Marshal(env)
	require.NoError(t, err)
	return body
}

func decode[T any](t *testing.T, resp Response) T {
	t.Helper()
	require.True(t, resp.OK, "unexpected error response: %s (%s)", resp.Error, resp.Code)
	var out T
	require.NoError(t, json.Unmarshal(resp.Payload, &out))
	return out
}

func booking(room int, checkIn, checkOut string) CreateReservationPayload {
	return CreateReservationPayload{
		GuestName:  "Carla",
		GuestEmail: "carla@example.com",
		GuestPhone: "555-0199",
		RoomNumber: room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}
}

func TestDispatcher_ListRooms(t *testing.T) {
	d := newTestDispatcher()
	resp := d.Dispatch(context.Background(), envelope(t, CommandListRooms, nil))

	assert.Equal(t, "ListRoomsResponse", resp.Type)
	out := decode[RoomsResponsePayload](t, resp)
	require.Len(t, out.Rooms, 5)
	assert.Equal(t, Room{Number: 101, Type: "Single", Rate: 100}, out.Rooms[0])
}

func TestDispatcher_ReservationFlow(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher()

	resp := d.Dispatch(ctx, envelope(t, CommandCreateReservation, booking(101, "2024-06-01", "2024-06-05")))
	created := decode[CreateReservationResponsePayload](t, resp)
	assert.Equal(t, 101, created.Reservation.RoomNumber)
	assert.Equal(t, 4, created.Reservation.Nights)
	assert.Equal(t, 400.0, created.Reservation.Total)
	assert.NotEmpty(t, created.Reservation.ReservationID)

	resp = d.Dispatch(ctx, envelope(t, CommandListAvailable, ListAvailablePayload{CheckIn: "2024-06-02", CheckOut: "2024-06-03"}))
	avail := decode[RoomsResponsePayload](t, resp)
	for _, r := range avail.Rooms {
		assert.NotEqual(t, 101, r.Number)
	}
	assert.Len(t, avail.Rooms, 4)

	resp = d.Dispatch(ctx, envelope(t, CommandCreateReservation, booking(101, "2024-06-04", "2024-06-06")))
	assert.False(t, resp.OK)
	assert.Equal(t, CodeRoomUnavailable, resp.Code)

	resp = d.Dispatch(ctx, envelope(t, CommandListReservations, nil))
	list := decode[ListReservationsResponsePayload](t, resp)
	require.Len(t, list.Reservations, 1)
	assert.Equal(t, created.Reservation, list.Reservations[0])

	resp = d.Dispatch(ctx, envelope(t, CommandCancelReservation, CancelReservationPayload{ReservationID: created.Reservation.ReservationID}))
	cancelled := decode[CancelReservationResponsePayload](t, resp)
	assert.True(t, cancelled.Cancelled)

	resp = d.Dispatch(ctx, envelope(t, CommandCancelReservation, CancelReservationPayload{ReservationID: created.Reservation.ReservationID}))
	cancelled = decode[CancelReservationResponsePayload](t, resp)
	assert.False(t, cancelled.Cancelled)
	assert.Equal(t, "reservation not found", cancelled.Message)
}

func TestDispatcher_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		wantCode string
	}{
		{
			name:     "malformed envelope",
			body:     []byte("{not json"),
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "unknown command",
			body:     envelope(t, CommandType("ConfirmReservation"), nil),
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "missing payload",
			body:     envelope(t, CommandListAvailable, nil),
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "bad date",
			body:     envelope(t, CommandListAvailable, ListAvailablePayload{CheckIn: "01/06/2024", CheckOut: "2024-06-02"}),
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "zero night availability",
			body:     envelope(t, CommandListAvailable, ListAvailablePayload{CheckIn: "2024-06-02", CheckOut: "2024-06-02"}),
			wantCode: CodeInvalidDateRange,
		},
		{
			name:     "zero night booking",
			body:     envelope(t, CommandCreateReservation, booking(101, "2024-06-02", "2024-06-02")),
			wantCode: CodeInvalidDateRange,
		},
		{
			name:     "unknown room",
			body:     envelope(t, CommandCreateReservation, booking(999, "2024-06-01", "2024-06-02")),
			wantCode: CodeRoomNotFound,
		},
		{
			name:     "missing guest",
			body:     envelope(t, CommandCreateReservation, CreateReservationPayload{RoomNumber: 101, CheckIn: "2024-06-01", CheckOut: "2024-06-02"}),
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "bad reservation id",
			body:     envelope(t, CommandCancelReservation, CancelReservationPayload{ReservationID: "abc"}),
			wantCode: CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newTestDispatcher().Dispatch(context.Background(), tt.body)
			assert.False(t, resp.OK)
			assert.Equal(t, "Error", resp.Type)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}
