package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

func run(t *testing.T, hotel *reservation.Hotel, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(hotel, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func newHotel() *reservation.Hotel {
	return reservation.NewHotel(reservation.DefaultCatalog(), nil)
}

func TestConsole_MakeAndListReservation(t *testing.T) {
	h := newHotel()
	out := run(t, h,
		"2", "Ana", "ana@example.com", "555-0101", "2024-06-01", "2024-06-05", "103",
		"4",
		"5",
	)

	assert.Contains(t, out, "Available Rooms:")
	assert.Contains(t, out, "Room 103 - Suite - $250")
	assert.Contains(t, out, "Reservation successful!")
	assert.Contains(t, out, "Room: 103 (Suite)")
	assert.Contains(t, out, "Check-In: 2024-06-01")
	assert.Contains(t, out, "Total: $1000 (4 nights)")
	assert.Contains(t, out, separator)

	list, err := h.ListReservations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Guest.Name)
}

func TestConsole_ViewAvailableRooms(t *testing.T) {
	h := newHotel()
	_, err := h.MakeReservation(context.Background(), reservation.Guest{Name: "Bia"}, 101,
		reservation.NewDate(2024, time.June, 1), reservation.NewDate(2024, time.June, 5))
	require.NoError(t, err)

	out := run(t, h, "1", "2024-06-02", "2024-06-03", "5")
	assert.NotContains(t, out, "Room 101 ")
	assert.Contains(t, out, "Room 102 - Double - $150")
}

func TestConsole_Errors(t *testing.T) {
	h := newHotel()
	out := run(t, h,
		"1", "2024-06-03", "2024-06-03",
		"1", "yesterday",
		"2", "Ana", "a@x", "1", "2024-06-01", "2024-06-02", "999",
		"9",
		"5",
	)

	assert.Contains(t, out, "Error: invalid date range")
	assert.Contains(t, out, "Error: invalid date")
	assert.Contains(t, out, "Error: room not found: 999")
	assert.Contains(t, out, "Invalid option. Please try again.")
}

func TestConsole_Cancel(t *testing.T) {
	h := newHotel()
	res, err := h.MakeReservation(context.Background(), reservation.Guest{Name: "Caio"}, 102,
		reservation.NewDate(2024, time.June, 1), reservation.NewDate(2024, time.June, 2))
	require.NoError(t, err)

	out := run(t, h,
		"3", "not-a-uuid",
		"3", res.ID.String(),
		"3", res.ID.String(),
		"4",
	)

	assert.Contains(t, out, "Invalid Reservation ID format.")
	assert.Contains(t, out, "Reservation canceled successfully.")
	assert.Contains(t, out, "Reservation not found.")
	assert.Contains(t, out, "No reservations found.")
}

func TestConsole_EndOfInputStops(t *testing.T) {
	out := run(t, newHotel(), "2", "Ana")
	assert.Contains(t, out, "Enter Guest Email: ")
}
