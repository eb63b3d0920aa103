package application

import (
	"context"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

type DeleteOrderHandler struct {
	sessions ports.SessionFactory
}

func NewDeleteOrderHandler(sessions ports.SessionFactory) *DeleteOrderHandler {
	return &DeleteOrderHandler{sessions: sessions}
}

func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) result.Result[result.Void] {
	session := h.sessions.NewSession()

	found, err := session.Orders().GetByDomainID(ctx, cmd.OrderID)
	if err != nil {
		return result.Fail(errReadFailed())
	}
	if found == nil {
		return result.Fail(order.ErrNotFound(cmd.OrderID))
	}

	found.Remove()
	session.Orders().Delete(found)

	return session.SaveChanges(ctx)
}
