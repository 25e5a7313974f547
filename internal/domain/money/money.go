// internal/domain/money/money.go
package money

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// Money is an amount in the minor unit of its currency (cents for USD)
type Money struct {
	Amount   int64
	Currency currency.Unit
}

// New creates Money from an amount already expressed in minor units
func New(minor int64, cur currency.Unit) Money {
	return Money{Amount: minor, Currency: cur}
}

// Zero returns a zero amount in the given currency
func Zero(cur currency.Unit) Money {
	return Money{Currency: cur}
}

// FromDecimal converts a major-unit decimal, rounding half away from zero to the currency scale
func FromDecimal(d decimal.Decimal, cur currency.Unit) Money {
	return Money{
		Amount:   d.Shift(int32(scale(cur))).Round(0).IntPart(),
		Currency: cur,
	}
}

// Parse parses a major-unit amount such as "29.99"
func Parse(s string, cur currency.Unit) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("amount[%s] is not valid: %w", s, err)
	}
	return FromDecimal(d, cur), nil
}

// MustParse is Parse for constants
func MustParse(s string, cur currency.Unit) Money {
	m, err := Parse(s, cur)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + o. Both amounts must share a currency. Overflowing int64 panics.
func (m Money) Add(o Money) Money {
	m.mustMatch(o)
	sum := m.Amount + o.Amount
	if (o.Amount > 0 && sum < m.Amount) || (o.Amount < 0 && sum > m.Amount) {
		panic(fmt.Sprintf("money: %s + %s overflows", m, o))
	}
	return Money{Amount: sum, Currency: m.Currency}
}

// Sub returns m - o. Both amounts must share a currency. Overflowing int64 panics.
func (m Money) Sub(o Money) Money {
	m.mustMatch(o)
	diff := m.Amount - o.Amount
	if (o.Amount > 0 && diff > m.Amount) || (o.Amount < 0 && diff < m.Amount) {
		panic(fmt.Sprintf("money: %s - %s overflows", m, o))
	}
	return Money{Amount: diff, Currency: m.Currency}
}

// Mul multiplies the amount by a quantity. Overflowing int64 panics; callers bound
// quantities so that it cannot happen.
func (m Money) Mul(n int) Money {
	if m.Amount == 0 || n == 0 {
		return Money{Currency: m.Currency}
	}
	product := m.Amount * int64(n)
	if product/int64(n) != m.Amount || (m.Amount == -1 && int64(n) == math.MinInt64) || (int64(n) == -1 && m.Amount == math.MinInt64) {
		panic(fmt.Sprintf("money: %s * %d overflows", m, n))
	}
	return Money{Amount: product, Currency: m.Currency}
}

// Percent returns pct percent of m rounded to the minor unit
func (m Money) Percent(pct decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(pct).Div(hundred), m.Currency)
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Decimal returns the amount in major units
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -int32(scale(m.Currency)))
}

// String renders the amount with the currency's fraction digits, e.g. "89.97"
func (m Money) String() string {
	return m.Decimal().StringFixed(int32(scale(m.Currency)))
}

// Format renders the amount for display in the given locale, with the currency symbol
func (m Money) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(m.Currency.Amount(m.Decimal().InexactFloat64())))
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.String(), Currency: m.Currency.String()})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	cur, err := currency.ParseISO(raw.Currency)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
	}

	parsed, err := Parse(raw.Amount, cur)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

func (m Money) mustMatch(o Money) {
	if m.Currency != o.Currency {
		panic(fmt.Sprintf("money: currency mismatch %s != %s", m.Currency, o.Currency))
	}
}

func scale(cur currency.Unit) int {
	s, _ := currency.Standard.Rounding(cur)
	return s
}
