// internal/domain/pricing/entity.go
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/money"
)

const (
	MethodStandard = "standard"
	MethodExpress  = "express"
)

// ShippingMethod is a flat-fee shipping option
type ShippingMethod struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	EstimatedDays string      `json:"estimated_days"`
	Price         money.Money `json:"price"`
}

// Promotion is an accepted promo code and the percentage it takes off the subtotal
type Promotion struct {
	Code    string          `json:"code"`
	Percent decimal.Decimal `json:"percent"`
}

// Quote is the priced breakdown of an order
type Quote struct {
	Subtotal        money.Money     `json:"subtotal"`
	ShippingMethod  ShippingMethod  `json:"shipping_method"`
	Shipping        money.Money     `json:"shipping"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	Tax             money.Money     `json:"tax"`
	PromoCode       string          `json:"promo_code,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Discount        money.Money     `json:"discount"`
	Total           money.Money     `json:"total"`
	Display         Display         `json:"display"`
}

// Display holds the quote amounts formatted for the store locale, e.g. "$ 97.99"
type Display struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}
