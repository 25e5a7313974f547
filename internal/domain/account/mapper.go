// internal/domain/account/mapper.go
package account

import (
	"time"

	"github.com/your-org/storefront/internal/domain/money"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"golang.org/x/text/currency"
)

func toOrder(rec commerce.Record[commerce.OrderAttributes], fallback currency.Unit) Order {
	attrs := rec.Attributes

	id := attrs.OrderNumber
	if id == "" {
		id = rec.ID
	}

	cur := fallback
	if parsed, err := currency.ParseISO(attrs.Total.CurrencyCode); err == nil {
		cur = parsed
	}

	items := make([]OrderItem, 0, len(attrs.Items))
	for _, item := range attrs.Items {
		items = append(items, OrderItem{
			ID:       item.ProductID,
			Title:    item.Title,
			Price:    money.FromDecimal(item.UnitPrice, cur),
			Quantity: item.Quantity,
			Image:    item.Image,
			Variant:  item.Variant,
		})
	}

	status := ParseStatus(attrs.State)
	order := Order{
		ID:          id,
		UUID:        rec.ID,
		Status:      status,
		StatusLabel: status.Label(),
		Items:       items,
		Subtotal:    money.FromDecimal(attrs.Subtotal.Number, cur),
		Shipping:    money.FromDecimal(attrs.Shipping.Number, cur),
		Tax:         money.FromDecimal(attrs.Tax.Number, cur),
		Discount:    money.FromDecimal(attrs.Discount.Number, cur),
		Total:       money.FromDecimal(attrs.Total.Number, cur),
		Address: Address{
			FullName: attrs.ShippingAddress.FullName,
			Address:  attrs.ShippingAddress.Address,
			City:     attrs.ShippingAddress.City,
			State:    attrs.ShippingAddress.State,
			ZipCode:  attrs.ShippingAddress.ZipCode,
			Country:  attrs.ShippingAddress.Country,
		},
		PaymentMethod:     attrs.PaymentMethod,
		TrackingNumber:    attrs.TrackingNumber,
		DeliveryDate:      parseTime(attrs.DeliveredAt),
		EstimatedDelivery: parseTime(attrs.EstimatedAt),
	}
	if placed := parseTime(attrs.Placed); placed != nil {
		order.Date = *placed
	}

	return order
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
