// Package order holds the Order aggregate: a draft order accumulates items,
// is submitted at most once, and is removed via soft delete. Status and
// record state are orthogonal axes.
package order

import (
	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"
)

// ID is the store-independent domain identifier, stable across systems.
type ID uuid.UUID

func NewID() ID { return ID(uuid.New()) }

func ParseID(raw string) (ID, error) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return ID{}, err
	}
	return ID(parsed), nil
}

func (id ID) String() string { return uuid.UUID(id).String() }
func (id ID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }

type Status int

const (
	StatusUnknown Status = iota
	StatusDraft
	StatusSubmitted
	StatusPaid
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusSubmitted:
		return "submitted"
	case StatusPaid:
		return "paid"
	default:
		return "unknown"
	}
}

func ParseStatus(raw string) (Status, bool) {
	switch raw {
	case "draft":
		return StatusDraft, true
	case "submitted":
		return StatusSubmitted, true
	case "paid":
		return StatusPaid, true
	default:
		return StatusUnknown, false
	}
}

type Order struct {
	domain.AggregateRoot
	domainID    ID
	orderNumber string
	totalAmount float64
	status      Status
	items       []*Item
}

// New creates a draft order and raises the created event.
func New(orderNumber string) *Order {
	o := &Order{
		domainID:    NewID(),
		orderNumber: orderNumber,
		status:      StatusDraft,
	}
	o.Raise(Created{BaseEvent: domain.NewBaseEvent(), OrderID: o.domainID})
	return o
}

func (o *Order) DomainID() ID        { return o.domainID }
func (o *Order) OrderNumber() string { return o.orderNumber }
func (o *Order) TotalAmount() float64 { return o.totalAmount }
func (o *Order) Status() Status      { return o.status }

func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends an owned item while the order is still a draft. The total
// is derived, never set by callers.
func (o *Order) AddItem(productName string, quantity int, price float64) {
	o.ensureDraft()
	o.items = append(o.items, newItem(productName, quantity, price))
	o.recalculateTotal()
	o.MarkChanged()
}

// Submit transitions Draft to Submitted exactly once and raises the submitted
// event with the final total. An empty order cannot be submitted.
func (o *Order) Submit() {
	o.ensureDraft()
	if len(o.items) == 0 {
		panic(domain.InvariantError("order: cannot submit an order without items"))
	}
	o.status = StatusSubmitted
	o.Raise(Submitted{BaseEvent: domain.NewBaseEvent(), OrderID: o.domainID, TotalAmount: o.totalAmount})
}

// Remove signals deletion. The record-state transition itself belongs to the
// persistence boundary; status stays untouched.
func (o *Order) Remove() {
	o.Raise(Deleted{BaseEvent: domain.NewBaseEvent(), OrderID: o.domainID})
}

func (o *Order) recalculateTotal() {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	o.totalAmount = total
}

func (o *Order) ensureDraft() {
	if o.status != StatusDraft {
		panic(domain.InvariantError("order: only draft orders can be modified"))
	}
}

// Rehydrate rebuilds an order loaded from the store without raising events or
// marking it changed.
func Rehydrate(domainID ID, orderNumber string, totalAmount float64, status Status, items []*Item) *Order {
	return &Order{
		domainID:    domainID,
		orderNumber: orderNumber,
		totalAmount: totalAmount,
		status:      status,
		items:       items,
	}
}
