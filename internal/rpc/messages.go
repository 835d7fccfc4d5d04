package rpc

import (
	"time"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

type Room struct {
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Rate   float64 `json:"rate"`
}

type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Reservation struct {
	ReservationID string  `json:"reservation_id"`
	Room          Room    `json:"room"`
	Guest         Guest   `json:"guest"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	CreatedAt     string  `json:"created_at"`
	Nights        int     `json:"nights"`
	Total         float64 `json:"total"`
}

type ListRoomsRequest struct{}

type ListRoomsResponse struct {
	Rooms []Room `json:"rooms"`
}

type ListAvailableRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type ListAvailableResponse struct {
	Rooms []Room `json:"rooms"`
}

type CreateReservationRequest struct {
	Guest      Guest  `json:"guest"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type CreateReservationResponse struct {
	Reservation Reservation `json:"reservation"`
	Message     string      `json:"message"`
}

type CancelReservationRequest struct {
	ReservationID string `json:"reservation_id"`
}

type CancelReservationResponse struct {
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message"`
}

type ListReservationsRequest struct{}

type ListReservationsResponse struct {
	Reservations []Reservation `json:"reservations"`
}

func toRooms(rooms []reservation.Room) []Room {
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, Room{Number: r.Number, Type: r.Type, Rate: r.Rate})
	}
	return out
}

func toReservation(r reservation.Reservation) Reservation {
	return Reservation{
		ReservationID: r.ID.String(),
		Room:          Room{Number: r.Room.Number, Type: r.Room.Type, Rate: r.Room.Rate},
		Guest:         Guest{Name: r.Guest.Name, Email: r.Guest.Email, Phone: r.Guest.Phone},
		CheckIn:       r.CheckIn.String(),
		CheckOut:      r.CheckOut.String(),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		Nights:        r.Nights(),
		Total:         r.Total(),
	}
}
