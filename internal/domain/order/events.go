package order

import "github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"

const (
	EventCreated   = "order.created"
	EventSubmitted = "order.submitted"
	EventDeleted   = "order.deleted"
)

type Created struct {
	domain.BaseEvent
	OrderID ID
}

func (Created) EventName() string { return EventCreated }

type Submitted struct {
	domain.BaseEvent
	OrderID     ID
	TotalAmount float64
}

func (Submitted) EventName() string { return EventSubmitted }

type Deleted struct {
	domain.BaseEvent
	OrderID ID
}

func (Deleted) EventName() string { return EventDeleted }
