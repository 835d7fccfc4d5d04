package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "hotel.v1.ReservationService"

// ReservationServiceServer é a interface que o servidor gRPC implementa.
type ReservationServiceServer interface {
	ListRooms(context.Context, *ListRoomsRequest) (*ListRoomsResponse, error)
	ListAvailable(context.Context, *ListAvailableRequest) (*ListAvailableResponse, error)
	CreateReservation(context.Context, *CreateReservationRequest) (*CreateReservationResponse, error)
	CancelReservation(context.Context, *CancelReservationRequest) (*CancelReservationResponse, error)
	ListReservations(context.Context, *ListReservationsRequest) (*ListReservationsResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReservationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListRooms", Handler: unaryHandler("ListRooms", ReservationServiceServer.ListRooms)},
		{MethodName: "ListAvailable", Handler: unaryHandler("ListAvailable", ReservationServiceServer.ListAvailable)},
		{MethodName: "CreateReservation", Handler: unaryHandler("CreateReservation", ReservationServiceServer.CreateReservation)},
		{MethodName: "CancelReservation", Handler: unaryHandler("CancelReservation", ReservationServiceServer.CancelReservation)},
		{MethodName: "ListReservations", Handler: unaryHandler("ListReservations", ReservationServiceServer.ListReservations)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hotel/v1/reservation",
}

func RegisterReservationServiceServer(s grpc.ServiceRegistrar, srv ReservationServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryHandler faz o papel do código que o protoc geraria para cada método.
func unaryHandler[Req, Resp any](method string, call func(ReservationServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReservationServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ReservationServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
