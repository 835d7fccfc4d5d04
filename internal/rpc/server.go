package rpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Ahmed33355/Hotel-Reservation-System/internal/reservation"
)

type Server struct {
	hotel *reservation.Hotel
	log   *zap.Logger
}

var _ ReservationServiceServer = (*Server)(nil)

func NewServer(hotel *reservation.Hotel, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{hotel: hotel, log: log}
}

func (s *Server) ListRooms(ctx context.Context, _ *ListRoomsRequest) (*ListRoomsResponse, error) {
	return &ListRoomsResponse{Rooms: toRooms(s.hotel.ListRooms())}, nil
}

func (s *Server) ListAvailable(ctx context.Context, req *ListAvailableRequest) (*ListAvailableResponse, error) {
	checkIn, checkOut, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	rooms, err := s.hotel.GetAvailableRooms(ctx, checkIn, checkOut)
	if err != nil {
		return nil, statusFromDomainError(err)
	}
	return &ListAvailableResponse{Rooms: toRooms(rooms)}, nil
}

func (s *Server) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*CreateReservationResponse, error) {
	if req.Guest.Name == "" || req.RoomNumber == 0 {
		return nil, status.Error(codes.InvalidArgument, "guest.name and room_number are required")
	}
	checkIn, checkOut, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	guest := reservation.Guest{Name: req.Guest.Name, Email: req.Guest.Email, Phone: req.Guest.Phone}
	res, err := s.hotel.MakeReservation(ctx, guest, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		return nil, statusFromDomainError(err)
	}

	s.log.Info("reservation created",
		zap.String("reservation_id", res.ID.String()),
		zap.Int("room", res.Room.Number),
		zap.String("check_in", res.CheckIn.String()),
		zap.String("check_out", res.CheckOut.String()))

	return &CreateReservationResponse{
		Reservation: toReservation(res),
		Message:     "reservation created",
	}, nil
}

func (s *Server) CancelReservation(ctx context.Context, req *CancelReservationRequest) (*CancelReservationResponse, error) {
	if req.ReservationID == "" {
		return nil, status.Error(codes.InvalidArgument, "reservation_id is required")
	}
	id, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid reservation id format")
	}

	ok, err := s.hotel.CancelReservation(ctx, id)
	if err != nil {
		return nil, statusFromDomainError(err)
	}
	if !ok {
		return &CancelReservationResponse{Cancelled: false, Message: "reservation not found"}, nil
	}

	s.log.Info("reservation cancelled", zap.String("reservation_id", id.String()))
	return &CancelReservationResponse{Cancelled: true, Message: "reservation cancelled"}, nil
}

func (s *Server) ListReservations(ctx context.Context, _ *ListReservationsRequest) (*ListReservationsResponse, error) {
	list, err := s.hotel.ListReservations(ctx)
	if err != nil {
		return nil, statusFromDomainError(err)
	}
	out := make([]Reservation, 0, len(list))
	for _, r := range list {
		out = append(out, toReservation(r))
	}
	return &ListReservationsResponse{Reservations: out}, nil
}

func parseRange(checkIn, checkOut string) (reservation.Date, reservation.Date, error) {
	if checkIn == "" || checkOut == "" {
		return reservation.Date{}, reservation.Date{}, status.Error(codes.InvalidArgument, "check_in and check_out are required")
	}
	in, err := reservation.ParseDate(checkIn)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, status.Error(codes.InvalidArgument, err.Error())
	}
	out, err := reservation.ParseDate(checkOut)
	if err != nil {
		return reservation.Date{}, reservation.Date{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return in, out, nil
}

func statusFromDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, reservation.ErrRoomNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, reservation.ErrRoomUnavailable):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, reservation.ErrInvalidDateRange),
		errors.Is(err, reservation.ErrInvalidDate):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// LoggingInterceptor registra método, duração e código de cada chamada.
func LoggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("rpc handled",
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
			zap.String("code", status.Code(err).String()))
		return resp, err
	}
}
