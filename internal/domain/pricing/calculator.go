// internal/domain/pricing/calculator.go
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/money"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
	ErrInvalidPromoCode      = errors.New("invalid promo code")
)

// DefaultTaxRate is the flat sales tax applied to the subtotal, in percent
var DefaultTaxRate = decimal.NewFromInt(8)

// DefaultPromotions returns the promo codes the storefront accepts out of the box
func DefaultPromotions() []Promotion {
	return []Promotion{
		{Code: "DISCOUNT15", Percent: decimal.NewFromInt(15)},
	}
}

// DefaultShippingMethods returns the standard and express options priced in cur
func DefaultShippingMethods(cur currency.Unit) []ShippingMethod {
	return []ShippingMethod{
		{
			ID:            MethodStandard,
			Name:          "Standard Shipping",
			Description:   "Delivery in 5-7 business days",
			EstimatedDays: "5-7",
			Price:         money.MustParse("4.99", cur),
		},
		{
			ID:            MethodExpress,
			Name:          "Express Shipping",
			Description:   "Delivery in 2-3 business days",
			EstimatedDays: "2-3",
			Price:         money.MustParse("14.99", cur),
		},
	}
}

// Calculator derives order totals from a cart subtotal
type Calculator struct {
	currency currency.Unit
	taxRate  decimal.Decimal
	methods  []ShippingMethod
	promos   map[string]Promotion
	locale   language.Tag
}

// Option configures a Calculator
type Option func(*Calculator)

// WithTaxRate overrides the tax percentage
func WithTaxRate(pct decimal.Decimal) Option {
	return func(c *Calculator) {
		c.taxRate = pct
	}
}

// WithLocale sets the locale quotes are displayed in
func WithLocale(tag language.Tag) Option {
	return func(c *Calculator) {
		c.locale = tag
	}
}

// WithPromotions replaces the accepted promo codes
func WithPromotions(promos ...Promotion) Option {
	return func(c *Calculator) {
		c.promos = indexPromotions(promos)
	}
}

// WithShippingMethods replaces the shipping options
func WithShippingMethods(methods ...ShippingMethod) Option {
	return func(c *Calculator) {
		c.methods = methods
	}
}

// NewCalculator creates a calculator with the default tax rate, promotions and shipping methods
func NewCalculator(cur currency.Unit, opts ...Option) *Calculator {
	c := &Calculator{
		currency: cur,
		taxRate:  DefaultTaxRate,
		methods:  DefaultShippingMethods(cur),
		promos:   indexPromotions(DefaultPromotions()),
		locale:   language.AmericanEnglish,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShippingMethods lists the available options
func (c *Calculator) ShippingMethods() []ShippingMethod {
	methods := make([]ShippingMethod, len(c.methods))
	copy(methods, c.methods)
	return methods
}

// Method looks up a shipping option by id
func (c *Calculator) Method(id string) (ShippingMethod, error) {
	for _, m := range c.methods {
		if m.ID == id {
			return m, nil
		}
	}
	return ShippingMethod{}, fmt.Errorf("%w: %q", ErrUnknownShippingMethod, id)
}

// Promotion looks up a promo code, ignoring case
func (c *Calculator) Promotion(code string) (Promotion, error) {
	promo, ok := c.promos[normalizeCode(code)]
	if !ok {
		return Promotion{}, ErrInvalidPromoCode
	}
	return promo, nil
}

// TaxRate returns the tax percentage
func (c *Calculator) TaxRate() decimal.Decimal {
	return c.taxRate
}

// Quote computes subtotal + shipping + tax - discount. A blank promo code means no discount.
func (c *Calculator) Quote(subtotal money.Money, methodID, promoCode string) (Quote, error) {
	method, err := c.Method(methodID)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{
		Subtotal:        subtotal,
		ShippingMethod:  method,
		Shipping:        method.Price,
		TaxRate:         c.taxRate,
		Tax:             subtotal.Percent(c.taxRate),
		DiscountPercent: decimal.Zero,
		Discount:        money.Zero(subtotal.Currency),
	}

	if strings.TrimSpace(promoCode) != "" {
		promo, err := c.Promotion(promoCode)
		if err != nil {
			return Quote{}, err
		}
		q.PromoCode = promo.Code
		q.DiscountPercent = promo.Percent
		q.Discount = subtotal.Percent(promo.Percent)
	}

	q.Total = subtotal.Add(q.Shipping).Add(q.Tax).Sub(q.Discount)
	q.Display = Display{
		Subtotal: q.Subtotal.Format(c.locale),
		Shipping: q.Shipping.Format(c.locale),
		Tax:      q.Tax.Format(c.locale),
		Discount: q.Discount.Format(c.locale),
		Total:    q.Total.Format(c.locale),
	}

	return q, nil
}

func indexPromotions(promos []Promotion) map[string]Promotion {
	index := make(map[string]Promotion, len(promos))
	for _, p := range promos {
		index[normalizeCode(p.Code)] = p
	}
	return index
}

func normalizeCode(code string) string {
	return strings.ToLower(code)
}
