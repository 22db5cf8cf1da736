package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/package-crud/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func TestConsumer_handle(t *testing.T) {
	event := model.EntityEvent{Entity: "user", Action: "created", EntityID: 1, OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        []byte
		redelivered bool
		handlerErr  error
		wantCalled  bool
		wantAck     bool
		wantNack    bool
		wantRequeue bool
	}{
		{name: "handled event is acked", body: body, wantCalled: true, wantAck: true},
		{name: "first failure is requeued", body: body, handlerErr: errors.New("mongo down"), wantCalled: true, wantNack: true, wantRequeue: true},
		{name: "failure on redelivery is dead-lettered", body: body, redelivered: true, handlerErr: errors.New("mongo down"), wantCalled: true, wantNack: true},
		{name: "redelivered event handled on retry is acked", body: body, redelivered: true, wantCalled: true, wantAck: true},
		{name: "malformed payload is dead-lettered", body: []byte("{not json"), wantNack: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var got model.EntityEvent
			c := &Consumer{handler: func(ctx context.Context, e model.EntityEvent) error {
				called = true
				got = e
				return tt.handlerErr
			}}
			ack := &fakeAcknowledger{}

			c.handle(context.Background(), amqp091.Delivery{
				Acknowledger: ack,
				DeliveryTag:  1,
				Redelivered:  tt.redelivered,
				RoutingKey:   "user.created",
				Body:         tt.body,
			})

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantNack, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
			if tt.wantCalled {
				assert.Equal(t, event, got)
			}
		})
	}
}

func TestConsumer_handleWaitsBeforeRequeue(t *testing.T) {
	c := &Consumer{
		handler:    func(ctx context.Context, e model.EntityEvent) error { return errors.New("mongo down") },
		retryDelay: 50 * time.Millisecond,
	}
	ack := &fakeAcknowledger{}

	start := time.Now()
	c.handle(context.Background(), amqp091.Delivery{Acknowledger: ack, Body: []byte(`{"entity":"user"}`)})

	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
}

func TestConsumer_handleRequeuesOnCancel(t *testing.T) {
	c := &Consumer{
		handler:    func(ctx context.Context, e model.EntityEvent) error { return errors.New("mongo down") },
		retryDelay: time.Hour,
	}
	ack := &fakeAcknowledger{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c.handle(ctx, amqp091.Delivery{Acknowledger: ack, Body: []byte(`{"entity":"user"}`)})

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
}

func TestEntityEventRoutingKey(t *testing.T) {
	e := model.EntityEvent{Entity: "package", Action: "deleted"}
	assert.Equal(t, "package.deleted", e.RoutingKey())
}

func TestEntityEventJSON(t *testing.T) {
	e := model.EntityEvent{Entity: "user", Action: "updated", EntityID: 7, OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	body, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entity":"user","action":"updated","entityId":7,"occurredAt":"2024-01-02T03:04:05Z"}`, string(body))
}
