package application

import (
	"log/slog"
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/mediator"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
)

type Dependencies struct {
	Sessions ports.SessionFactory
	Cache    ports.Cache
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// RegisterHandlers wires every request type to its single handler and
// validator. The list is explicit so a duplicate registration is caught the
// moment the process starts.
func RegisterHandlers(m *mediator.Mediator, deps Dependencies) {
	mediator.RegisterRequest[CreateOrderCommand](m, NewCreateOrderHandler(deps.Sessions))
	mediator.RegisterCommand[SubmitOrderCommand](m, NewSubmitOrderHandler(deps.Sessions))
	mediator.RegisterCommand[DeleteOrderCommand](m, NewDeleteOrderHandler(deps.Sessions))
	mediator.RegisterQuery[GetOrderByIDQuery](m, NewGetOrderByIDHandler(deps.Sessions, deps.Cache, deps.CacheTTL, deps.Logger))
	mediator.RegisterCollectionQuery[FilterOrdersQuery](m, NewFilterOrdersHandler(deps.Sessions))

	mediator.RegisterValidator(m, validateCreateOrder)
	mediator.RegisterValidator(m, validateSubmitOrder)
	mediator.RegisterValidator(m, validateDeleteOrder)
	mediator.RegisterValidator(m, validateGetOrder)
	mediator.RegisterValidator(m, validateFilterOrders)
}
