package postgres

import (
	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
)

func toOrderModel(o *order.Order) orderModel {
	audit := o.Audit()
	m := orderModel{
		ID:          o.ID(),
		DomainID:    uuid.UUID(o.DomainID()),
		OrderNumber: o.OrderNumber(),
		TotalAmount: o.TotalAmount(),
		Status:      int(o.Status()),
		RowVersion:  o.RowVersion(),
		CreatorID:   audit.CreatorID,
		CreatedAt:   audit.CreatedAt,
		ModifierID:  audit.ModifierID,
		ModifiedAt:  audit.ModifiedAt,
		DeleterID:   audit.DeleterID,
		DeletedAt:   audit.DeletedAt,
		RecordState: int(audit.RecordState),
	}
	for _, item := range o.Items() {
		m.Items = append(m.Items, toOrderItemModel(item, o.ID()))
	}
	return m
}

func toOrderItemModel(item *order.Item, orderID int64) orderItemModel {
	audit := item.Audit()
	return orderItemModel{
		ID:          item.ID(),
		ItemID:      item.ItemID(),
		OrderID:     orderID,
		ProductName: item.ProductName(),
		Quantity:    item.Quantity(),
		Price:       item.Price(),
		RowVersion:  item.RowVersion(),
		CreatorID:   audit.CreatorID,
		CreatedAt:   audit.CreatedAt,
		ModifierID:  audit.ModifierID,
		ModifiedAt:  audit.ModifiedAt,
		DeleterID:   audit.DeleterID,
		DeletedAt:   audit.DeletedAt,
		RecordState: int(audit.RecordState),
	}
}

func toDomainOrder(m orderModel) *order.Order {
	items := make([]*order.Item, 0, len(m.Items))
	for _, im := range m.Items {
		items = append(items, toDomainItem(im))
	}
	o := order.Rehydrate(order.ID(m.DomainID), m.OrderNumber, m.TotalAmount, order.Status(m.Status), items)
	o.BindStored(m.ID, m.RowVersion)
	o.RestoreAudit(domain.AuditSnapshot{
		CreatorID:   m.CreatorID,
		CreatedAt:   m.CreatedAt,
		ModifierID:  m.ModifierID,
		ModifiedAt:  m.ModifiedAt,
		DeleterID:   m.DeleterID,
		DeletedAt:   m.DeletedAt,
		RecordState: domain.RecordState(m.RecordState),
	})
	return o
}

func toDomainItem(m orderItemModel) *order.Item {
	item := order.RehydrateItem(m.ItemID, m.ProductName, m.Quantity, m.Price)
	item.BindStored(m.ID, m.RowVersion)
	item.RestoreAudit(domain.AuditSnapshot{
		CreatorID:   m.CreatorID,
		CreatedAt:   m.CreatedAt,
		ModifierID:  m.ModifierID,
		ModifiedAt:  m.ModifiedAt,
		DeleterID:   m.DeleterID,
		DeletedAt:   m.DeletedAt,
		RecordState: domain.RecordState(m.RecordState),
	})
	return item
}
