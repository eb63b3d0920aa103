package events

import (
	"testing"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
)

func TestNewKafkaPublisherValidatesConfiguration(t *testing.T) {
	t.Parallel()

	if _, err := NewKafkaPublisher(nil, nil); err == nil {
		t.Fatalf("expected error without brokers")
	}
	if _, err := NewKafkaPublisher([]string{"localhost:9092"}, map[string]string{
		order.EventCreated: "",
	}); err == nil {
		t.Fatalf("expected error for an event mapped to an empty topic")
	}

	publisher, err := NewKafkaPublisher([]string{"localhost:9092"}, map[string]string{
		order.EventCreated:   "orders.created.v1",
		order.EventSubmitted: "orders.submitted.v1",
		order.EventDeleted:   "orders.deleted.v1",
	})
	if err != nil {
		t.Fatalf("valid configuration rejected: %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}
