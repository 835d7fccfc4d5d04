package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client é o stub do ReservationService.
type Client struct {
	cc   grpc.ClientConnInterface
	conn *grpc.ClientConn
}

// Dial abre uma conexão sem TLS com o servidor.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: conn, conn: conn}, nil
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	return c.cc.Invoke(ctx, fullMethod(method), in, out, grpc.CallContentSubtype(codecName))
}

func (c *Client) ListRooms(ctx context.Context) (*ListRoomsResponse, error) {
	out := new(ListRoomsResponse)
	if err := c.invoke(ctx, "ListRooms", &ListRoomsRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAvailable(ctx context.Context, in *ListAvailableRequest) (*ListAvailableResponse, error) {
	out := new(ListAvailableResponse)
	if err := c.invoke(ctx, "ListAvailable", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReservation(ctx context.Context, in *CreateReservationRequest) (*CreateReservationResponse, error) {
	out := new(CreateReservationResponse)
	if err := c.invoke(ctx, "CreateReservation", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelReservation(ctx context.Context, in *CancelReservationRequest) (*CancelReservationResponse, error) {
	out := new(CancelReservationResponse)
	if err := c.invoke(ctx, "CancelReservation", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListReservations(ctx context.Context) (*ListReservationsResponse, error) {
	out := new(ListReservationsResponse)
	if err := c.invoke(ctx, "ListReservations", &ListReservationsRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}
