package mq

import (
	"encoding/json"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

// Tipo de comando enviado via RabbitMQ
type CommandType string

const (
	CommandListRooms         CommandType = "ListRooms"
	CommandListAvailable     CommandType = "ListAvailable"
	CommandCreateReservation CommandType = "CreateReservation"
	CommandCancelReservation CommandType = "CancelReservation"
	CommandListReservations  CommandType = "ListReservations"
)

// Envelope genérico de comando
type CommandEnvelope struct {
	Type    CommandType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payloads de requisição

type ListAvailablePayload struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type CreateReservationPayload struct {
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type CancelReservationPayload struct {
	ReservationID string `json:"reservation_id"`
}

// Estruturas de resposta

type Room struct {
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Rate   float64 `json:"rate"`
}

type Reservation struct {
	ReservationID string  `json:"reservation_id"`
	RoomNumber    int     `json:"room_number"`
	RoomType      string  `json:"room_type"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	GuestPhone    string  `json:"guest_phone"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	Total         float64 `json:"total"`
}

type RoomsResponsePayload struct {
	Rooms []Room `json:"rooms"`
}

type CreateReservationResponsePayload struct {
	Reservation Reservation `json:"reservation"`
	Message     string      `json:"message"`
}

type CancelReservationResponsePayload struct {
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message"`
}

type ListReservationsResponsePayload struct {
	Reservations []Reservation `json:"reservations"`
}

// Códigos estáveis de erro, para o cliente não depender do texto.
const (
	CodeRoomNotFound     = "ROOM_NOT_FOUND"
	CodeRoomUnavailable  = "ROOM_UNAVAILABLE"
	CodeInvalidDateRange = "INVALID_DATE_RANGE"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeInternal         = "INTERNAL"
)

// Envelope genérico de resposta

type Response struct {
	OK      bool            `json:"ok"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func toRoom(r reservation.Room) Room {
	return Room{Number: r.Number, Type: r.Type, Rate: r.Rate}
}

func toRooms(rooms []reservation.Room) []Room {
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoom(r))
	}
	return out
}

func toReservation(r reservation.Reservation) Reservation {
	return Reservation{
		ReservationID: r.ID.String(),
		RoomNumber:    r.Room.Number,
		RoomType:      r.Room.Type,
		GuestName:     r.Guest.Name,
		GuestEmail:    r.Guest.Email,
		GuestPhone:    r.Guest.Phone,
		CheckIn:       r.CheckIn.String(),
		CheckOut:      r.CheckOut.String(),
		Nights:        r.Nights(),
		Total:         r.Total(),
	}
}
