package postgres

import (
	"time"

	"github.com/google/uuid"
)

type orderModel struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	DomainID    uuid.UUID  `gorm:"column:domain_id;type:uuid;uniqueIndex"`
	OrderNumber string     `gorm:"column:order_number"`
	TotalAmount float64    `gorm:"column:total_amount"`
	Status      int        `gorm:"column:status"`
	RowVersion  int64      `gorm:"column:row_version"`
	CreatorID   uuid.UUID  `gorm:"column:creator_id;type:uuid"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ModifierID  *uuid.UUID `gorm:"column:modifier_id;type:uuid"`
	ModifiedAt  *time.Time `gorm:"column:modified_at"`
	DeleterID   *uuid.UUID `gorm:"column:deleter_id;type:uuid"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
	RecordState int        `gorm:"column:record_state"`

	Items []orderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

func (orderModel) TableName() string { return "orders" }

type orderItemModel struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID      uuid.UUID  `gorm:"column:item_id;type:uuid;uniqueIndex"`
	OrderID     int64      `gorm:"column:order_id;index"`
	ProductName string     `gorm:"column:product_name"`
	Quantity    int        `gorm:"column:quantity"`
	Price       float64    `gorm:"column:price"`
	RowVersion  int64      `gorm:"column:row_version"`
	CreatorID   uuid.UUID  `gorm:"column:creator_id;type:uuid"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ModifierID  *uuid.UUID `gorm:"column:modifier_id;type:uuid"`
	ModifiedAt  *time.Time `gorm:"column:modified_at"`
	DeleterID   *uuid.UUID `gorm:"column:deleter_id;type:uuid"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
	RecordState int        `gorm:"column:record_state"`
}

func (orderItemModel) TableName() string { return "order_items" }
