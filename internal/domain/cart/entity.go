// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront/internal/domain/money"
)

// Product is the catalog reference handed to the cart when a shopper adds an item
type Product struct {
	ID      int64       `json:"id"`
	Title   string      `json:"title"`
	Price   money.Money `json:"price"`
	Image   string      `json:"image"`
	Variant string      `json:"variant,omitempty"`
}

// LineItem represents one product in the cart with its aggregated quantity
type LineItem struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	UnitPrice money.Money `json:"unit_price"`
	Image     string      `json:"image"`
	Quantity  int         `json:"quantity"`
	Variant   string      `json:"variant,omitempty"`
}

// Total returns unit price times quantity
func (l LineItem) Total() money.Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Snapshot is the serializable form of a cart, used by session stores
type Snapshot struct {
	Currency string     `json:"currency"`
	Items    []LineItem `json:"items"`
}
