// internal/domain/account/entity.go
package account

import (
	"errors"
	"strings"
	"time"

	"github.com/your-org/storefront/internal/domain/money"
)

var (
	ErrLoginRequired      = errors.New("login required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrOrderNotFound      = errors.New("order not found")
)

// OrderStatus is the fulfilment state shown in order history
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var statusLabels = map[OrderStatus]string{
	StatusProcessing: "Processing",
	StatusShipped:    "Shipped",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

// ParseStatus maps backend order states onto the four storefront statuses.
// Unknown states count as processing.
func ParseStatus(state string) OrderStatus {
	switch strings.ToLower(state) {
	case "shipped", "fulfillment_shipped":
		return StatusShipped
	case "delivered", "completed":
		return StatusDelivered
	case "cancelled", "canceled":
		return StatusCancelled
	}
	return StatusProcessing
}

// Label is the display label of the status
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusProcessing]
}

// Profile is the signed-in customer
type Profile struct {
	UID   string   `json:"uid"`
	Name  string   `json:"name"`
	Mail  string   `json:"mail,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// OrderItem is one purchased line
type OrderItem struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Price    money.Money `json:"price"`
	Quantity int         `json:"quantity"`
	Image    string      `json:"image,omitempty"`
	Variant  string      `json:"variant,omitempty"`
}

// Address is the shipping address of an order
type Address struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// Order is a past order as the order history shows it
type Order struct {
	ID                string      `json:"id"`
	UUID              string      `json:"uuid,omitempty"`
	Date              time.Time   `json:"date"`
	Status            OrderStatus `json:"status"`
	StatusLabel       string      `json:"status_label"`
	Items             []OrderItem `json:"items"`
	Subtotal          money.Money `json:"subtotal"`
	Shipping          money.Money `json:"shipping"`
	Tax               money.Money `json:"tax"`
	Discount          money.Money `json:"discount"`
	Total             money.Money `json:"total"`
	Address           Address     `json:"address"`
	PaymentMethod     string      `json:"payment_method,omitempty"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	DeliveryDate      *time.Time  `json:"delivery_date,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
}

// FilterOrders keeps orders whose id contains query or that have an item whose title
// contains it, ignoring case. An empty query keeps everything.
func FilterOrders(orders []Order, query string) []Order {
	q := strings.ToLower(query)

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(o.ID, query) || hasItemTitle(o.Items, q) {
			out = append(out, o)
		}
	}
	return out
}

func hasItemTitle(items []OrderItem, query string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), query) {
			return true
		}
	}
	return false
}
