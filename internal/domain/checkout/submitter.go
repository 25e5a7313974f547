// internal/domain/checkout/submitter.go
package checkout

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/money"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
)

// Order is what gets handed to a submitter
type Order struct {
	Items    []cart.LineItem
	Quote    pricing.Quote
	Shipping ShippingDetails
	Payment  MaskedPayment
}

// OrderSubmitter places an order and returns its order number
type OrderSubmitter interface {
	Submit(ctx context.Context, order Order) (string, error)
}

// SimulatedSubmitter accepts every order and makes up a six-digit order number
type SimulatedSubmitter struct{}

func (SimulatedSubmitter) Submit(context.Context, Order) (string, error) {
	return strconv.Itoa(100000 + rand.IntN(900000)), nil
}

// OrderCreator is the part of the commerce client that creates orders
type OrderCreator interface {
	CreateOrder(ctx context.Context, attrs commerce.OrderAttributes) (commerce.Record[commerce.OrderAttributes], error)
}

// CommerceSubmitter creates the order in the commerce backend
type CommerceSubmitter struct {
	client OrderCreator
}

func NewCommerceSubmitter(client OrderCreator) *CommerceSubmitter {
	return &CommerceSubmitter{client: client}
}

func (s *CommerceSubmitter) Submit(ctx context.Context, order Order) (string, error) {
	rec, err := s.client.CreateOrder(ctx, toOrderAttributes(order))
	if err != nil {
		return "", fmt.Errorf("commerce.CreateOrder: %w", err)
	}

	if rec.Attributes.OrderNumber != "" {
		return rec.Attributes.OrderNumber, nil
	}
	return rec.ID, nil
}

func toOrderAttributes(order Order) commerce.OrderAttributes {
	items := make([]commerce.OrderItemAttributes, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, commerce.OrderItemAttributes{
			ProductID: item.ID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice.Decimal(),
			Quantity:  item.Quantity,
			Image:     item.Image,
			Variant:   item.Variant,
		})
	}

	q := order.Quote
	return commerce.OrderAttributes{
		State:          "processing",
		Mail:           order.Shipping.Email,
		Items:          items,
		Subtotal:       priceField(q.Subtotal),
		Shipping:       priceField(q.Shipping),
		Tax:            priceField(q.Tax),
		Discount:       priceField(q.Discount),
		Total:          priceField(q.Total),
		ShippingMethod: q.ShippingMethod.ID,
		PromoCode:      q.PromoCode,
		ShippingAddress: commerce.AddressAttributes{
			FullName: order.Shipping.FullName(),
			Address:  order.Shipping.Address,
			City:     order.Shipping.City,
			State:    order.Shipping.State,
			ZipCode:  order.Shipping.ZipCode,
			Country:  order.Shipping.Country,
		},
		PaymentMethod: order.Payment.Display(),
	}
}

func priceField(m money.Money) commerce.PriceField {
	return commerce.PriceField{Number: m.Decimal(), CurrencyCode: m.Currency.String()}
}
