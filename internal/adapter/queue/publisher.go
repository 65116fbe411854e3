// Package queue publishes domain events to RabbitMQ. Events are advisory:
// downstream consumers (notification fan-out, analytics) react to flight and
// rotation changes, so publishing is best effort and callers log-and-continue
// on failure.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/timeutil"
)

// Exchange is the topic exchange all inventory events are published to.
const Exchange = "airline.events"

// Publisher implements domain.EventPublisher on an AMQP connection. The
// channel is guarded by a mutex; amqp channels are not safe for concurrent
// publishing.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	clock timeutil.Clock
	mu    sync.Mutex
}

// NewPublisher dials the broker and declares the topic exchange. The clock
// stamps outgoing messages; pass timeutil.NewRealClock() in production.
func NewPublisher(url string, clock timeutil.Clock) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		Exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp exchange declare: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, clock: clock}, nil
}

// Publish implements domain.EventPublisher.Publish. Messages are persistent
// so they survive broker restarts.
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx,
		Exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.clock.Now().UTC(),
			Body:         body,
		})
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
