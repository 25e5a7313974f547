// internal/domain/checkout/entity.go
package checkout

import (
	"errors"
	"strings"

	"github.com/your-org/storefront/internal/domain/pricing"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrIncompleteCheckout = errors.New("checkout is not ready for review")
)

// Step is a stage of the checkout wizard
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
)

const DefaultCountry = "United States"

// Countries the store ships to
var Countries = []string{
	"United States", "Canada", "United Kingdom", "Australia",
	"Germany", "France", "Japan", "Brazil", "India",
}

// ShippingDetails is the shipping form
type ShippingDetails struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country" validate:"required,country"`
}

// FullName joins first and last name
func (d ShippingDetails) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// PaymentDetails is the payment form as submitted. It is never stored.
type PaymentDetails struct {
	CardName   string `json:"card_name" validate:"required"`
	CardNumber string `json:"card_number" validate:"required,card"`
	ExpiryDate string `json:"expiry_date" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	SaveCard   bool   `json:"save_card"`
}

// MaskedPayment is what the draft keeps of a payment: no full number, no CVV
type MaskedPayment struct {
	CardName   string `json:"card_name"`
	Last4      string `json:"last4"`
	ExpiryDate string `json:"expiry_date"`
	SaveCard   bool   `json:"save_card"`
}

// Mask drops everything but the last four card digits
func (p PaymentDetails) Mask() MaskedPayment {
	digits := cardDigits(p.CardNumber)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return MaskedPayment{
		CardName:   p.CardName,
		Last4:      digits,
		ExpiryDate: p.ExpiryDate,
		SaveCard:   p.SaveCard,
	}
}

// Display renders the card as the review step shows it
func (m MaskedPayment) Display() string {
	if m.Last4 == "" {
		return ""
	}
	return "Credit Card ending in " + m.Last4
}

// Draft is the checkout in progress for one session
type Draft struct {
	Step           Step            `json:"step"`
	Shipping       ShippingDetails `json:"shipping"`
	Payment        *MaskedPayment  `json:"payment,omitempty"`
	ShippingMethod string          `json:"shipping_method"`
}

// NewDraft starts at the shipping step with the default country and standard shipping
func NewDraft() *Draft {
	return &Draft{
		Step:           StepShipping,
		Shipping:       ShippingDetails{Country: DefaultCountry},
		ShippingMethod: pricing.MethodStandard,
	}
}

// Next advances one step. It is a no-op at review.
func (d *Draft) Next() {
	switch d.Step {
	case StepShipping:
		d.Step = StepPayment
	case StepPayment:
		d.Step = StepReview
	}
}

// Back returns one step. It is a no-op at shipping.
func (d *Draft) Back() {
	switch d.Step {
	case StepPayment:
		d.Step = StepShipping
	case StepReview:
		d.Step = StepPayment
	}
}

// Reset discards the draft
func (d *Draft) Reset() {
	*d = *NewDraft()
}

func cardDigits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
