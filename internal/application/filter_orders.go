package application

import (
	"context"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/pagination"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

type FilterOrdersHandler struct {
	sessions ports.SessionFactory
}

func NewFilterOrdersHandler(sessions ports.SessionFactory) *FilterOrdersHandler {
	return &FilterOrdersHandler{sessions: sessions}
}

func (h *FilterOrdersHandler) Handle(ctx context.Context, query FilterOrdersQuery) result.Result[pagination.Page[OrderDTO]] {
	session := h.sessions.NewSession()

	orders, total, err := session.Orders().Filter(ctx, ports.OrderFilter{
		OrderNumber: query.OrderNumber,
		Statuses:    query.Statuses,
		Page:        query.Page,
	})
	if err != nil {
		return result.Failure[pagination.Page[OrderDTO]](errReadFailed())
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toOrderDTO(o))
	}
	return result.Success(pagination.NewPage(dtos, query.Page.Normalized(), total))
}
