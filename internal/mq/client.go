package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ResponseError é uma resposta com OK=false vinda do worker.
type ResponseError struct {
	Code    string
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client faz RPC sobre RabbitMQ: publica na fila de comandos e espera a
// resposta numa fila exclusiva, casando pelo CorrelationId. Pode ser usado
// por várias goroutines.
type Client struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	queue   string
	replyTo string

	mu      sync.Mutex
	pending map[string]chan Response
	done    chan struct{}
}

func Dial(amqpURL, queue string) (*Client, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// fila de resposta temporária
	replyQueue, err := ch.QueueDeclare(
		"",
		false,
		true,  // auto-delete
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare reply queue: %w", err)
	}

	replies, err := ch.Consume(
		replyQueue.Name,
		"",
		true, // auto-ack
		true, // exclusive
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to register reply consumer: %w", err)
	}

	c := &Client{
		conn:    conn,
		ch:      ch,
		queue:   queue,
		replyTo: replyQueue.Name,
		pending: make(map[string]chan Response),
		done:    make(chan struct{}),
	}
	go c.route(replies)
	return c, nil
}

func (c *Client) route(replies <-chan amqp.Delivery) {
	defer close(c.done)
	for msg := range replies {
		var resp Response
		if err := json.Unmarshal(msg.Body, &resp); err != nil {
			resp = Response{OK: false, Code: CodeInternal, Error: "failed to unmarshal response: " + err.Error()}
		}
		c.mu.Lock()
		waiter, ok := c.pending[msg.CorrelationId]
		delete(c.pending, msg.CorrelationId)
		c.mu.Unlock()
		if ok {
			waiter <- resp
		}
	}
}

func (c *Client) Close() error {
	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Send publica env e espera a resposta correspondente ou o fim de ctx.
func (c *Client) Send(ctx context.Context, env CommandEnvelope) (Response, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	correlationID := uuid.NewString()
	waiter := make(chan Response, 1)
	c.mu.Lock()
	c.pending[correlationID] = waiter
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, correlationID)
		c.mu.Unlock()
	}()

	err = c.ch.PublishWithContext(ctx, "", c.queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		ReplyTo:       c.replyTo,
		CorrelationId: correlationID,
		Body:          body,
	})
	if err != nil {
		return Response{}, fmt.Errorf("failed to publish command: %w", err)
	}

	select {
	case resp := <-waiter:
		return resp, nil
	case <-c.done:
		return Response{}, errors.New("reply channel closed")
	case <-ctx.Done():
		return Response{}, fmt.Errorf("waiting for response: %w", ctx.Err())
	}
}

// call envia o comando e decodifica o payload da resposta em out.
func (c *Client) call(ctx context.Context, t CommandType, in, out any) error {
	env := CommandEnvelope{Type: t}
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		env.Payload = raw
	}

	resp, err := c.Send(ctx, env)
	if err != nil {
		return err
	}
	if !resp.OK {
		return &ResponseError{Code: resp.Code, Message: resp.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Payload, out); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}

func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	var out RoomsResponsePayload
	if err := c.call(ctx, CommandListRooms, nil, &out); err != nil {
		return nil, err
	}
	return out.Rooms, nil
}

func (c *Client) ListAvailable(ctx context.Context, checkIn, checkOut string) ([]Room, error) {
	var out RoomsResponsePayload
	in := ListAvailablePayload{CheckIn: checkIn, CheckOut: checkOut}
	if err := c.call(ctx, CommandListAvailable, in, &out); err != nil {
		return nil, err
	}
	return out.Rooms, nil
}

func (c *Client) CreateReservation(ctx context.Context, req CreateReservationPayload) (Reservation, error) {
	var out CreateReservationResponsePayload
	if err := c.call(ctx, CommandCreateReservation, req, &out); err != nil {
		return Reservation{}, err
	}
	return out.Reservation, nil
}

func (c *Client) CancelReservation(ctx context.Context, reservationID string) (bool, error) {
	var out CancelReservationResponsePayload
	in := CancelReservationPayload{ReservationID: reservationID}
	if err := c.call(ctx, CommandCancelReservation, in, &out); err != nil {
		return false, err
	}
	return out.Cancelled, nil
}

func (c *Client) ListReservations(ctx context.Context) ([]Reservation, error) {
	var out ListReservationsResponsePayload
	if err := c.call(ctx, CommandListReservations, nil, &out); err != nil {
		return nil, err
	}
	return out.Reservations, nil
}
