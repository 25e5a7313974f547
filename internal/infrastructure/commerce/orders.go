// internal/infrastructure/commerce/orders.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

const orderType = "commerce_order--default"

// PriceField is a price with its currency code
type PriceField struct {
	Number       decimal.Decimal `json:"number"`
	CurrencyCode string          `json:"currency_code"`
}

// OrderItemAttributes is one purchased line of an order
type OrderItemAttributes struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
	Variant   string          `json:"variant,omitempty"`
}

// AddressAttributes is a postal address on an order
type AddressAttributes struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// OrderAttributes is a commerce order as created and listed by the backend
type OrderAttributes struct {
	OrderNumber     string                `json:"order_number,omitempty"`
	State           string                `json:"state,omitempty"`
	Placed          string                `json:"placed,omitempty"`
	Mail            string                `json:"mail,omitempty"`
	Items           []OrderItemAttributes `json:"order_items,omitempty"`
	Subtotal        PriceField            `json:"subtotal_price"`
	Shipping        PriceField            `json:"shipping_price"`
	Tax             PriceField            `json:"tax_price"`
	Discount        PriceField            `json:"discount_price"`
	Total           PriceField            `json:"total_price"`
	ShippingMethod  string                `json:"shipping_method,omitempty"`
	PromoCode       string                `json:"promo_code,omitempty"`
	ShippingAddress AddressAttributes     `json:"shipping_address"`
	PaymentMethod   string                `json:"payment_method,omitempty"`
	TrackingNumber  string                `json:"tracking_number,omitempty"`
	DeliveredAt     string                `json:"delivered_at,omitempty"`
	EstimatedAt     string                `json:"estimated_delivery,omitempty"`
}

type createOrderDocument struct {
	Data resourceOut `json:"data"`
}

type resourceOut struct {
	Type       string          `json:"type"`
	Attributes OrderAttributes `json:"attributes"`
}

// CreateOrder submits a new order
func (c *Client) CreateOrder(ctx context.Context, attrs OrderAttributes) (Record[OrderAttributes], error) {
	var doc document
	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/jsonapi/commerce_order/default",
		body:    createOrderDocument{Data: resourceOut{Type: orderType, Attributes: attrs}},
		jsonAPI: true,
	}, &doc)
	if err != nil {
		return Record[OrderAttributes]{}, fmt.Errorf("client.CreateOrder: %w", err)
	}

	order, err := decodeOne[OrderAttributes]("/jsonapi/commerce_order/default", doc)
	if err != nil {
		return Record[OrderAttributes]{}, fmt.Errorf("client.CreateOrder: %w", err)
	}
	return order, nil
}

// Orders lists the orders visible to the bearer of the context token
func (c *Client) Orders(ctx context.Context) ([]Record[OrderAttributes], error) {
	orders, err := getCollection[OrderAttributes](ctx, c, "/jsonapi/commerce_order/default", nil, true)
	if err != nil {
		return nil, fmt.Errorf("client.Orders: %w", err)
	}
	return orders, nil
}

// Order returns a single order
func (c *Client) Order(ctx context.Context, id string) (Record[OrderAttributes], error) {
	order, err := getOne[OrderAttributes](ctx, c, "/jsonapi/commerce_order/default/"+url.PathEscape(id))
	if err != nil {
		return Record[OrderAttributes]{}, fmt.Errorf("client.Order: %w", err)
	}
	return order, nil
}
