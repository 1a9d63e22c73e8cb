package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/guttosm/pallet-service/internal/metrics"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher publishes JSON events to a named queue.
type Publisher interface {
	Publish(ctx context.Context, queueName string, event interface{}) error
	Close() error
}

// AMQPConfig holds the broker connection settings.
type AMQPConfig struct {
	URL string
	// DialTimeout bounds each connection attempt.
	DialTimeout time.Duration
}

// AMQPPublisher publishes persistent JSON messages through the default exchange.
// The connection is dialed lazily and re-dialed after it drops.
type AMQPPublisher struct {
	cfg      AMQPConfig
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
	closed   bool
	dial     func(url string, timeout time.Duration) (*amqp.Connection, error)
}

// NewAMQPPublisher creates a publisher. No connection is made until the first Publish.
func NewAMQPPublisher(cfg AMQPConfig) *AMQPPublisher {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	return &AMQPPublisher{
		cfg:      cfg,
		declared: make(map[string]bool),
		dial: func(url string, timeout time.Duration) (*amqp.Connection, error) {
			return amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(timeout)})
		},
	}
}

// Publish marshals event and sends it to queueName, declaring the queue as durable first.
func (p *AMQPPublisher) Publish(ctx context.Context, queueName string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		metrics.RecordEventPublished(queueName, "encode_error")
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	ch, err := p.channel()
	if err != nil {
		metrics.RecordEventPublished(queueName, "connect_error")
		return err
	}

	if !p.declared[queueName] {
		if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
			p.reset()
			metrics.RecordEventPublished(queueName, "error")
			return fmt.Errorf("declare queue %s: %w", queueName, err)
		}
		p.declared[queueName] = true
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, msg); err != nil {
		p.reset()
		metrics.RecordEventPublished(queueName, "error")
		return fmt.Errorf("publish to %s: %w", queueName, err)
	}

	metrics.RecordEventPublished(queueName, "success")
	return nil
}

// channel returns the open channel, dialing when needed. Callers hold p.mu.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := p.dial(p.cfg.URL, p.cfg.DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	log.Info().Msg("Connected to message broker")
	p.conn = conn
	p.ch = ch
	return ch, nil
}

// reset drops the current connection so the next Publish re-dials.
func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch = nil
	p.conn = nil
	p.declared = make(map[string]bool)
}

// Close closes the broker connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.reset()
	return nil
}

// NoopPublisher discards events. It is used when no broker is configured.
type NoopPublisher struct{}

// Publish discards the event.
func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// Close does nothing.
func (NoopPublisher) Close() error { return nil }

var (
	_ Publisher = (*AMQPPublisher)(nil)
	_ Publisher = NoopPublisher{}
)
