package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

type CreateOrderHandler struct {
	sessions ports.SessionFactory
	nowFn    func() time.Time
}

func NewCreateOrderHandler(sessions ports.SessionFactory) *CreateOrderHandler {
	return &CreateOrderHandler{sessions: sessions, nowFn: func() time.Time { return time.Now().UTC() }}
}

func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) result.Result[CreateOrderResponse] {
	session := h.sessions.NewSession()

	o := order.New(generateOrderNumber(h.nowFn()))
	for _, item := range cmd.Items {
		o.AddItem(item.ProductName, item.Quantity, item.Price)
	}
	session.Orders().Create(o)

	if res := session.SaveChanges(ctx); res.IsFailure() {
		return result.Failure[CreateOrderResponse](res.Error())
	}
	return result.Success(CreateOrderResponse{OrderID: o.DomainID().String()})
}

func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), rand.IntN(100000))
}
