package application

import (
	"context"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

type SubmitOrderHandler struct {
	sessions ports.SessionFactory
}

func NewSubmitOrderHandler(sessions ports.SessionFactory) *SubmitOrderHandler {
	return &SubmitOrderHandler{sessions: sessions}
}

func (h *SubmitOrderHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) result.Result[result.Void] {
	session := h.sessions.NewSession()

	found, err := session.Orders().GetByDomainID(ctx, cmd.OrderID)
	if err != nil {
		return result.Fail(errReadFailed())
	}
	if found == nil {
		return result.Fail(order.ErrNotFound(cmd.OrderID))
	}

	found.Submit()

	return session.SaveChanges(ctx)
}
