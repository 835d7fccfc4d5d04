package mq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// replyPublisher é o pedaço de *amqp.Channel que o worker usa para responder.
type replyPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Worker struct {
	ch         *amqp.Channel
	publisher  replyPublisher
	queue      string
	dispatcher *Dispatcher
	timeout    time.Duration
	log        *zap.Logger
}

func NewWorker(ch *amqp.Channel, queue string, dispatcher *Dispatcher, timeout time.Duration, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Worker{
		ch:         ch,
		publisher:  ch,
		queue:      queue,
		dispatcher: dispatcher,
		timeout:    timeout,
		log:        log,
	}
}

// DeclareQueue declara a fila durável de comandos.
func DeclareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	return err
}

// Run consome a fila até ctx terminar ou o canal ser fechado pelo broker.
func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.ch.Consume(
		w.queue,
		"",
		false, // auto-ack = false (ack manual)
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	w.log.Info("mq worker listening", zap.String("queue", w.queue))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(parentCtx context.Context, d amqp.Delivery) {
	defer func() {
		// sempre dá ack pra não ficar reentregando infinitamente
		if err := d.Ack(false); err != nil {
			w.log.Warn("failed to ack message", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(parentCtx, w.timeout)
	defer cancel()

	resp := w.dispatcher.Dispatch(ctx, d.Body)
	w.sendResponse(ctx, d, resp)
}

func (w *Worker) sendResponse(ctx context.Context, d amqp.Delivery, resp Response) {
	if d.ReplyTo == "" {
		// "fire-and-forget"
		return
	}
	body, err := json.Marshal(resp)
	if err != nil {
		w.log.Error("failed to marshal response", zap.Error(err))
		return
	}

	err = w.publisher.PublishWithContext(
		ctx,
		"",
		d.ReplyTo,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: d.CorrelationId,
			Body:          body,
		},
	)
	if err != nil {
		w.log.Warn("failed to publish response",
			zap.String("reply_to", d.ReplyTo),
			zap.String("correlation_id", d.CorrelationId),
			zap.Error(err))
	}
}
