package application

import (
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/pagination"
)

// Commands and queries routed through the mediator. Each request type has
// exactly one handler, wired in register.go.

type CreateOrderCommand struct {
	Items []NewOrderItem
}

type NewOrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

type SubmitOrderCommand struct {
	OrderID order.ID
}

type DeleteOrderCommand struct {
	OrderID order.ID
}

type GetOrderByIDQuery struct {
	OrderID order.ID
}

type FilterOrdersQuery struct {
	OrderNumber string
	Statuses    []order.Status
	Page        pagination.PageRequest
}

type OrderDTO struct {
	OrderID     string         `json:"order_id"`
	OrderNumber string         `json:"order_number"`
	TotalAmount float64        `json:"total_amount"`
	Status      string         `json:"status"`
	Items       []OrderItemDTO `json:"items,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type OrderItemDTO struct {
	ItemID      string  `json:"item_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

func toOrderDTO(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ItemID:      item.ItemID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
			Total:       item.Total(),
		})
	}
	return OrderDTO{
		OrderID:     o.DomainID().String(),
		OrderNumber: o.OrderNumber(),
		TotalAmount: o.TotalAmount(),
		Status:      o.Status().String(),
		Items:       items,
		CreatedAt:   o.Audit().CreatedAt,
	}
}
