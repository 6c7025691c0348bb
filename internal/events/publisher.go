// Package events publishes storefront domain events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/filmz/filmz/internal/logger"
)

// DefaultPurchaseQueue receives purchase.completed events.
const DefaultPurchaseQueue = "purchase.completed"

// PurchaseCompleted is emitted after a purchase row is committed.
type PurchaseCompleted struct {
	OrderID       int64     `json:"orderId"`
	TransactionID string    `json:"transactionId"`
	UserID        int64     `json:"userId"`
	MovieID       int64     `json:"movieId"`
	PricePaid     float64   `json:"pricePaid"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"paymentMethod"`
	PurchasedAt   time.Time `json:"purchasedAt"`
}

//go:generate mockgen -source=publisher.go -destination=../mock/publisher_mock.go -package=mock

// Publisher delivers domain events. Callers treat failures as non-fatal.
type Publisher interface {
	PublishPurchaseCompleted(ctx context.Context, evt PurchaseCompleted) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) PublishPurchaseCompleted(context.Context, PurchaseCompleted) error { return nil }
func (Nop) Close() error                                                      { return nil }

// AMQPPublisher publishes persistent JSON messages to a durable queue on the
// default exchange. The connection is opened on first use and reopened after
// it drops.
type AMQPPublisher struct {
	url    string
	queue  string
	logger *logger.Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// NewAMQPPublisher returns a publisher for url. No connection is made yet.
func NewAMQPPublisher(url, queue string, log *logger.Logger) (*AMQPPublisher, error) {
	if url == "" {
		return nil, errors.New("events: empty amqp url")
	}
	if queue == "" {
		queue = DefaultPurchaseQueue
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AMQPPublisher{url: url, queue: queue, logger: log}, nil
}

// PublishPurchaseCompleted sends evt to the purchase queue.
func (p *AMQPPublisher) PublishPurchaseCompleted(ctx context.Context, evt PurchaseCompleted) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("events: marshal purchase: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         "purchase.completed",
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.reset()
		return fmt.Errorf("events: publish: %w", err)
	}
	p.logger.Debug().Int64("order_id", evt.OrderID).Str("queue", p.queue).Msg("events: purchase published")
	return nil
}

// channel returns an open channel, dialing and declaring the queue when
// needed. Callers hold p.mu.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.closed {
		return nil, errors.New("events: publisher closed")
	}
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("events: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare queue %s: %w", p.queue, err)
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close releases the connection. Further publishes fail.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.reset()
	return nil
}
