package order

import (
	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"
)

// Item is owned exclusively by its parent order and has no lifecycle of its
// own.
type Item struct {
	domain.Auditable
	itemID      uuid.UUID
	productName string
	quantity    int
	price       float64
}

func newItem(productName string, quantity int, price float64) *Item {
	return &Item{
		itemID:      uuid.New(),
		productName: productName,
		quantity:    quantity,
		price:       price,
	}
}

func (i *Item) ItemID() uuid.UUID   { return i.itemID }
func (i *Item) ProductName() string { return i.productName }
func (i *Item) Quantity() int       { return i.quantity }
func (i *Item) Price() float64      { return i.price }

func (i *Item) Total() float64 { return i.price * float64(i.quantity) }

// RehydrateItem rebuilds an item loaded from the store.
func RehydrateItem(itemID uuid.UUID, productName string, quantity int, price float64) *Item {
	return &Item{
		itemID:      itemID,
		productName: productName,
		quantity:    quantity,
		price:       price,
	}
}
