package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/mediator"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
)

// Forwarder bridges committed domain events to the outbound publisher and
// drops stale cache entries for orders that changed. It runs inside the
// commit's publication batch, so a forwarding error surfaces to the caller
// that saved the changes.
type Forwarder struct {
	publisher ports.EventPublisher
	cache     ports.Cache
	logger    *slog.Logger
}

func NewForwarder(publisher ports.EventPublisher, cache ports.Cache, logger *slog.Logger) *Forwarder {
	return &Forwarder{publisher: publisher, cache: cache, logger: logger}
}

// Register subscribes the forwarder to every order event type.
func (f *Forwarder) Register(m *mediator.Mediator) {
	mediator.Subscribe(m, f.handleCreated)
	mediator.Subscribe(m, f.handleSubmitted)
	mediator.Subscribe(m, f.handleDeleted)
}

type createdPayload struct {
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type submittedPayload struct {
	OrderID     string    `json:"order_id"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type deletedPayload struct {
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (f *Forwarder) handleCreated(ctx context.Context, event order.Created) error {
	payload, err := json.Marshal(createdPayload{
		OrderID:    event.OrderID.String(),
		OccurredAt: event.OccurredAt(),
	})
	if err != nil {
		return err
	}
	return f.publisher.Publish(ctx, order.EventCreated, payload, event.OrderID.String())
}

func (f *Forwarder) handleSubmitted(ctx context.Context, event order.Submitted) error {
	payload, err := json.Marshal(submittedPayload{
		OrderID:     event.OrderID.String(),
		TotalAmount: event.TotalAmount,
		OccurredAt:  event.OccurredAt(),
	})
	if err != nil {
		return err
	}
	f.invalidate(ctx, event.OrderID)
	return f.publisher.Publish(ctx, order.EventSubmitted, payload, event.OrderID.String())
}

func (f *Forwarder) handleDeleted(ctx context.Context, event order.Deleted) error {
	payload, err := json.Marshal(deletedPayload{
		OrderID:    event.OrderID.String(),
		OccurredAt: event.OccurredAt(),
	})
	if err != nil {
		return err
	}
	f.invalidate(ctx, event.OrderID)
	return f.publisher.Publish(ctx, order.EventDeleted, payload, event.OrderID.String())
}

// invalidate drops the read-through entry. A cache miss is always safe, so a
// failed delete is logged and swallowed.
func (f *Forwarder) invalidate(ctx context.Context, id order.ID) {
	if err := f.cache.Delete(ctx, "order:"+id.String()); err != nil {
		f.logger.WarnContext(ctx, "order cache invalidation failed",
			"module", "events.forwarder", "order_id", id.String(), "error", err)
	}
}
