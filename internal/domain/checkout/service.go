// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/pricing"
)

// Service handles checkout business logic
type Service struct {
	calculator *pricing.Calculator
	submitter  OrderSubmitter
	logger     logrus.FieldLogger
}

// NewService creates a new checkout service
func NewService(calculator *pricing.Calculator, submitter OrderSubmitter, logger logrus.FieldLogger) *Service {
	if submitter == nil {
		submitter = SimulatedSubmitter{}
	}
	return &Service{
		calculator: calculator,
		submitter:  submitter,
		logger:     logger,
	}
}

// Summary is the checkout page state
type Summary struct {
	Step            Step                     `json:"step"`
	Items           []cart.LineItem          `json:"items"`
	Quote           pricing.Quote            `json:"quote"`
	Shipping        ShippingDetails          `json:"shipping"`
	Payment         *MaskedPayment           `json:"payment,omitempty"`
	ShippingMethods []pricing.ShippingMethod `json:"shipping_methods"`
	Countries       []string                 `json:"countries"`
}

// Confirmation is returned once an order is placed
type Confirmation struct {
	OrderID  string          `json:"order_id"`
	Items    []cart.LineItem `json:"items"`
	Quote    pricing.Quote   `json:"quote"`
	Shipping ShippingDetails `json:"shipping"`
	PlacedAt time.Time       `json:"placed_at"`
}

// GetSummary prices the cart for the current draft
func (s *Service) GetSummary(c *cart.Store, d *Draft, promoCode string) (*Summary, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	quote, err := s.calculator.Quote(c.Total(), d.ShippingMethod, promoCode)
	if err != nil {
		return nil, fmt.Errorf("calculator.Quote: %w", err)
	}

	return &Summary{
		Step:            d.Step,
		Items:           c.Items(),
		Quote:           quote,
		Shipping:        d.Shipping,
		Payment:         d.Payment,
		ShippingMethods: s.calculator.ShippingMethods(),
		Countries:       Countries,
	}, nil
}

// SubmitShipping stores the shipping form and moves on to payment. A draft already past the
// shipping step keeps its step. An empty method id keeps the current shipping method.
func (s *Service) SubmitShipping(d *Draft, details ShippingDetails, methodID string) error {
	if err := details.Validate(); err != nil {
		return err
	}

	if methodID != "" {
		if _, err := s.calculator.Method(methodID); err != nil {
			return err
		}
		d.ShippingMethod = methodID
	}

	d.Shipping = details
	if d.Step == StepShipping {
		d.Next()
	}
	return nil
}

// SubmitPayment masks and stores the payment form and moves on to review
func (s *Service) SubmitPayment(d *Draft, details PaymentDetails) error {
	if d.Step == StepShipping {
		return ErrIncompleteCheckout
	}
	if err := details.Validate(); err != nil {
		return err
	}

	masked := details.Mask()
	d.Payment = &masked
	d.Next()
	return nil
}

// PlaceOrder submits the reviewed draft. On success the cart is emptied and the draft reset;
// the caller owns the promo code and clears it.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Store, d *Draft, promoCode string) (*Confirmation, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if d.Step != StepReview || d.Payment == nil {
		return nil, ErrIncompleteCheckout
	}

	quote, err := s.calculator.Quote(c.Total(), d.ShippingMethod, promoCode)
	if err != nil {
		return nil, fmt.Errorf("calculator.Quote: %w", err)
	}

	items := c.Items()
	orderID, err := s.submitter.Submit(ctx, Order{
		Items:    items,
		Quote:    quote,
		Shipping: d.Shipping,
		Payment:  *d.Payment,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to place order")
		return nil, fmt.Errorf("submitter.Submit: %w", err)
	}

	confirmation := &Confirmation{
		OrderID:  orderID,
		Items:    items,
		Quote:    quote,
		Shipping: d.Shipping,
		PlacedAt: time.Now().UTC(),
	}

	c.Clear()
	d.Reset()

	s.logger.WithFields(logrus.Fields{
		"order_id": orderID,
		"total":    quote.Total.String(),
	}).Info("Order placed")

	return confirmation, nil
}
