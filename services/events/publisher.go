package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"katwate/models"
	"katwate/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Routing keys on the enquiry exchange.
const (
	RoutingReservation = "booking.reservation"
	RoutingEvent       = "booking.event"
)

// Publisher hands enquiry events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event models.EnquiryEvent) error
	Close() error
}

// NewPublisher connects to the broker when url is set and falls back to a
// publisher that drops events otherwise.
func NewPublisher(url, exchange string) (Publisher, error) {
	if url == "" {
		utils.GetLogger().Info("AMQP_URL not set, enquiry events will not be published")
		return NoopPublisher{}, nil
	}
	pub, err := NewAMQPPublisher(url, exchange)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// AMQPPublisher publishes persistent JSON messages to a durable topic exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
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
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp exchange declare %s: %w", exchange, err)
	}
	utils.GetLogger().Info("Connected to AMQP broker", zap.String("exchange", exchange))
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event models.EnquiryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal enquiry event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, models.EnquiryEvent) error { return nil }
func (NoopPublisher) Close() error                                               { return nil }
