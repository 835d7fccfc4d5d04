package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Dispatcher traduz um envelope de comando numa chamada ao Hotel. Não sabe
// nada de AMQP, então dá pra testar sem broker.
type Dispatcher struct {
	hotel *reservation.Hotel
	log   *zap.Logger
}

func NewDispatcher(hotel *reservation.Hotel, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{hotel: hotel, log: log}
}

// Dispatch decodifica body e sempre devolve uma Response (OK ou erro).
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) Response {
	var env CommandEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		d.log.Warn("invalid command envelope", zap.Error(err))
		return errorResponse(fmt.Errorf("%w: invalid command format: %v", ErrInvalidArgument, err))
	}

	var (
		respType string
		payload  any
		err      error
	)
	switch env.Type {
	case CommandListRooms:
		respType, payload = "ListRoomsResponse", RoomsResponsePayload{Rooms: toRooms(d.hotel.ListRooms())}
	case CommandListAvailable:
		respType = "ListAvailableResponse"
		payload, err = d.listAvailable(ctx, env.Payload)
	case CommandCreateReservation:
		respType = "CreateReservationResponse"
		payload, err = d.createReservation(ctx, env.Payload)
	case CommandCancelReservation:
		respType = "CancelReservationResponse"
		payload, err = d.cancelReservation(ctx, env.Payload)
	case CommandListReservations:
		respType = "ListReservationsResponse"
		payload, err = d.listReservations(ctx)
	default:
		err = fmt.Errorf("%w: unknown command type: %s", ErrInvalidArgument, env.Type)
	}
	if err != nil {
		d.log.Info("command failed", zap.String("type", string(env.Type)), zap.Error(err))
		return errorResponse(err)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return errorResponse(fmt.Errorf("marshal response: %w", err))
	}
	return Response{OK: true, Type: respType, Payload: raw}
}

func decodePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: payload is required", ErrInvalidArgument)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: invalid payload: %v", ErrInvalidArgument, err)
	}
	return nil
}

func parseRange(checkIn, checkOut string) (reservation.Date, reservation.Date, error) {
	if checkIn == "" || checkOut == "" {
		return reservation.Date{}, reservation.Date{}, fmt.Errorf("%w: check_in and check_out are required", ErrInvalidArgument)
	}
	in, err := reservation.ParseDate(checkIn)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, err
	}
	out, err := reservation.ParseDate(checkOut)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, err
	}
	return in, out, nil
}

func (d *Dispatcher) listAvailable(ctx context.Context, raw json.RawMessage) (any, error) {
	var req ListAvailablePayload
	if err := decodePayload(raw, &req); err != nil {
		return nil, err
	}
	in, out, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	rooms, err := d.hotel.GetAvailableRooms(ctx, in, out)
	if err != nil {
		return nil, err
	}
	return RoomsResponsePayload{Rooms: toRooms(rooms)}, nil
}

func (d *Dispatcher) createReservation(ctx context.Context, raw json.RawMessage) (any, error) {
	var req CreateReservationPayload
	if err := decodePayload(raw, &req); err != nil {
		return nil, err
	}
	if req.GuestName == "" || req.RoomNumber == 0 {
		return nil, fmt.Errorf("%w: guest_name and room_number are required", ErrInvalidArgument)
	}
	in, out, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	guest := reservation.Guest{Name: req.GuestName, Email: req.GuestEmail, Phone: req.GuestPhone}
	res, err := d.hotel.MakeReservation(ctx, guest, req.RoomNumber, in, out)
	if err != nil {
		return nil, err
	}
	d.log.Info("reservation created",
		zap.String("reservation_id", res.ID.String()),
		zap.Int("room", res.Room.Number))

	return CreateReservationResponsePayload{
		Reservation: toReservation(res),
		Message:     "reservation created",
	}, nil
}

func (d *Dispatcher) cancelReservation(ctx context.Context, raw json.RawMessage) (any, error) {
	var req CancelReservationPayload
	if err := decodePayload(raw, &req); err != nil {
		return nil, err
	}
	if req.ReservationID == "" {
		return nil, fmt.Errorf("%w: reservation_id is required", ErrInvalidArgument)
	}
	id, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation id format", ErrInvalidArgument)
	}

	ok, err := d.hotel.CancelReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	msg := "reservation not found"
	if ok {
		msg = "reservation cancelled"
	}
	return CancelReservationResponsePayload{Cancelled: ok, Message: msg}, nil
}

func (d *Dispatcher) listReservations(ctx context.Context) (any, error) {
	list, err := d.hotel.ListReservations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Reservation, 0, len(list))
	for _, r := range list {
		out = append(out, toReservation(r))
	}
	return ListReservationsResponsePayload{Reservations: out}, nil
}

func errorResponse(err error) Response {
	return Response{
		OK:    false,
		Error: err.Error(),
		Code:  errorCode(err),
		Type:  "Error",
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, reservation.ErrRoomNotFound):
		return CodeRoomNotFound
	case errors.Is(err, reservation.ErrRoomUnavailable):
		return CodeRoomUnavailable
	case errors.Is(err, reservation.ErrInvalidDateRange):
		return CodeInvalidDateRange
	case errors.Is(err, reservation.ErrInvalidDate),
		errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	default:
		return CodeInternal
	}
}
