package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/package-crud/model"
	"github.com/muhammadheryan/package-crud/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DefaultRetryDelay is how long a failed message is held before it is requeued
const DefaultRetryDelay = 5 * time.Second

// EventHandler processes one decoded event. A first failure requeues the message
// after the retry delay; a failure on redelivery dead-letters it.
type EventHandler func(ctx context.Context, event model.EntityEvent) error

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	handler    EventHandler
	retryDelay time.Duration
}

func NewConsumer(uri string, handler EventHandler) (*Consumer, error) {
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

	if err := declareDeadLetter(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// Declare the queue
	_, err = channel.QueueDeclare(
		AuditQueue,
		true,
		false,
		false,
		false,
		amqp091.Table{"x-dead-letter-exchange": DeadLetterExchange},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// Every entity event goes to the audit queue
	err = channel.QueueBind(
		AuditQueue,
		"#",
		EventExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		handler:    handler,
		retryDelay: DefaultRetryDelay,
	}, nil
}

// Start consumes the audit queue until ctx is cancelled or the channel closes.
// The returned channel is closed when consumption stops.
func (c *Consumer) Start(ctx context.Context) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		AuditQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return done, nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event model.EntityEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] failed to unmarshal message, dead-lettering", zap.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}

	if err := c.handler(ctx, event); err != nil {
		if msg.Redelivered {
			logger.Error("[Consumer] failed to handle redelivered event, dead-lettering",
				zap.String("routing_key", msg.RoutingKey),
				zap.String("error", err.Error()),
			)
			_ = msg.Nack(false, false)
			return
		}

		logger.Error("[Consumer] failed to handle event, requeueing",
			zap.String("routing_key", msg.RoutingKey),
			zap.Duration("retry_delay", c.retryDelay),
			zap.String("error", err.Error()),
		)
		c.wait(ctx)
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
}

// wait blocks for the retry delay or until ctx is done
func (c *Consumer) wait(ctx context.Context) {
	if c.retryDelay <= 0 {
		return
	}
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

func declareDeadLetter(channel *amqp091.Channel) error {
	if err := channel.ExchangeDeclare(DeadLetterExchange, "fanout", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := channel.QueueDeclare(DeadLetterQueue, true, false, false, false, nil); err != nil {
		return err
	}
	return channel.QueueBind(DeadLetterQueue, "", DeadLetterExchange, false, nil)
}
