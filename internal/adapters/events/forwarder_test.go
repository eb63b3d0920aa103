package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/mediator"
)

type published struct {
	eventType    string
	payload      []byte
	partitionKey string
}

type fakePublisher struct {
	messages []published
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, eventType string, payload []byte, partitionKey string) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, published{eventType: eventType, payload: payload, partitionKey: partitionKey})
	return nil
}

type fakeCache struct {
	values  map[string]string
	deleted []string
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) { return c.values[key], nil }

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func newForwarderForTest(publisher *fakePublisher, cache *fakeCache) (*Forwarder, *mediator.Mediator) {
	m := mediator.New()
	f := NewForwarder(publisher, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.Register(m)
	return f, m
}

func TestForwarderPublishesCreatedEvent(t *testing.T) {
	t.Parallel()

	publisher := &fakePublisher{}
	cache := &fakeCache{values: make(map[string]string)}
	_, m := newForwarderForTest(publisher, cache)

	orderID := order.NewID()
	event := order.Created{BaseEvent: domain.NewBaseEvent(), OrderID: orderID}
	if err := m.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(publisher.messages) != 1 {
		t.Fatalf("expected one outbound message, got %d", len(publisher.messages))
	}
	msg := publisher.messages[0]
	if msg.eventType != order.EventCreated {
		t.Fatalf("unexpected event type %q", msg.eventType)
	}
	if msg.partitionKey != orderID.String() {
		t.Fatalf("partition key must be the order id")
	}
	var payload map[string]any
	if err := json.Unmarshal(msg.payload, &payload); err != nil {
		t.Fatalf("payload must be json: %v", err)
	}
	if payload["order_id"] != orderID.String() {
		t.Fatalf("payload must carry the order id, got %v", payload)
	}
}

func TestForwarderInvalidatesCacheOnSubmitAndDelete(t *testing.T) {
	t.Parallel()

	publisher := &fakePublisher{}
	cache := &fakeCache{values: make(map[string]string)}
	_, m := newForwarderForTest(publisher, cache)

	orderID := order.NewID()
	err := m.Publish(context.Background(),
		order.Submitted{BaseEvent: domain.NewBaseEvent(), OrderID: orderID, TotalAmount: 80},
		order.Deleted{BaseEvent: domain.NewBaseEvent(), OrderID: orderID},
	)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(cache.deleted) != 2 {
		t.Fatalf("expected two invalidations, got %d", len(cache.deleted))
	}
	if cache.deleted[0] != "order:"+orderID.String() {
		t.Fatalf("unexpected cache key %q", cache.deleted[0])
	}
	if len(publisher.messages) != 2 {
		t.Fatalf("expected two outbound messages, got %d", len(publisher.messages))
	}
	if publisher.messages[0].eventType != order.EventSubmitted || publisher.messages[1].eventType != order.EventDeleted {
		t.Fatalf("unexpected event types %q, %q", publisher.messages[0].eventType, publisher.messages[1].eventType)
	}
}

func TestForwarderPropagatesPublisherError(t *testing.T) {
	t.Parallel()

	boom := errors.New("broker down")
	publisher := &fakePublisher{err: boom}
	cache := &fakeCache{values: make(map[string]string)}
	_, m := newForwarderForTest(publisher, cache)

	err := m.Publish(context.Background(), order.Created{BaseEvent: domain.NewBaseEvent(), OrderID: order.NewID()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected broker error, got %v", err)
	}
}
