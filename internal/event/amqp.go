package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/journey-app/journey/internal/logger"
)

// amqpChannel is the subset of *amqp.Channel the forwarder needs
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPForwarder mirrors bus events onto a RabbitMQ topic exchange.
// The routing key is the event type, so consumers can bind to "raffle.*" or "mission.claimed".
type AMQPForwarder struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	mu       sync.Mutex
}

// NewAMQPForwarder dials the broker and declares a durable topic exchange
func NewAMQPForwarder(url, exchange string) (*AMQPForwarder, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,            // name
		DefaultExchangeKind, // type
		true,                // durable
		false,               // auto-deleted
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &AMQPForwarder{conn: conn, ch: ch, exchange: exchange}, nil
}

func newForwarderWithChannel(ch amqpChannel, exchange string) *AMQPForwarder {
	return &AMQPForwarder{ch: ch, exchange: exchange}
}

// Forward publishes one event. Broker failures are logged and never fail the in-process publish.
func (f *AMQPForwarder) Forward(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgForwardFailed, "event_type", evt.Type, "error", err)
		return nil
	}

	pubCtx, cancel := context.WithTimeout(ctx, amqpPublishTimeout)
	defer cancel()

	f.mu.Lock()
	err = f.ch.PublishWithContext(pubCtx,
		f.exchange,       // exchange
		string(evt.Type), // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  amqpContentType,
			DeliveryMode: amqp.Persistent,
			Type:         string(evt.Type),
			Body:         body,
		})
	f.mu.Unlock()

	if err != nil {
		logger.FromContext(ctx).Error(LogMsgForwardFailed, "event_type", evt.Type, "exchange", f.exchange, "error", err)
	}
	return nil
}

// Close closes the channel and the connection
func (f *AMQPForwarder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ch.Close(); err != nil {
		return err
	}
	if f.conn != nil {
		return f.conn.Close()
	}
	return nil
}
