package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/muhammadheryan/package-crud/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	EventExchange = "entity_events"
	AuditQueue    = "entity_audit_queue"

	// Rejected audit messages are routed here instead of being redelivered forever
	DeadLetterExchange = "entity_events.dlx"
	DeadLetterQueue    = "entity_audit_dead"
)

// EventPublisher emits entity lifecycle events
type EventPublisher interface {
	Publish(ctx context.Context, event model.EntityEvent) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(uri string) (*Publisher, error) {
	conn, err := amqp091.Dial(uri)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareExchange(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// Publish sends the event to the topic exchange using "<entity>.<action>" as routing key
func (p *Publisher) Publish(ctx context.Context, event model.EntityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// amqp channels must not be shared by concurrent publishers
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(
		ctx,
		EventExchange,      // exchange
		event.RoutingKey(), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

func declareExchange(channel *amqp091.Channel) error {
	return channel.ExchangeDeclare(
		EventExchange, // name
		"topic",       // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
}
