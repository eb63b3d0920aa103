package ports

import (
	"context"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/pagination"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

// OrderRepository stages intentions against the owning session without
// committing. Absence is returned as nil, never as an error value; translating
// absence into a NotFound failure is the handler's job.
type OrderRepository interface {
	Create(o *order.Order)
	Delete(o *order.Order)
	GetByDomainID(ctx context.Context, id order.ID) (*order.Order, error)
	GetByID(ctx context.Context, id int64) (*order.Order, error)
	Filter(ctx context.Context, params OrderFilter) ([]*order.Order, int64, error)
}

type OrderFilter struct {
	OrderNumber string
	Statuses    []order.Status
	Page        pagination.PageRequest
}

// UnitOfWork commits the session's staged working set as one atomic
// operation: audit stamping, then the physical write, then domain-event
// publication.
type UnitOfWork interface {
	SaveChanges(ctx context.Context) result.Result[result.Void]
}

// Session is one request's persistence scope. Sessions are never shared
// across concurrent requests.
type Session interface {
	UnitOfWork
	Orders() OrderRepository
}

type SessionFactory interface {
	NewSession() Session
}
