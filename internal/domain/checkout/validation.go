// internal/domain/checkout/validation.go
package checkout

import (
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return slices.Contains(Countries, fl.Field().String())
	})
	_ = v.RegisterValidation("card", func(fl validator.FieldLevel) bool {
		n := len(cardDigits(fl.Field().String()))
		return n >= 12 && n <= 19
	})
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		month, year, ok := strings.Cut(fl.Field().String(), "/")
		if !ok || len(month) != 2 || len(year) != 2 {
			return false
		}
		if cardDigits(month) != month || cardDigits(year) != year {
			return false
		}
		return month >= "01" && month <= "12"
	})

	return v
}

// Validate checks the shipping form
func (d ShippingDetails) Validate() error {
	return validate.Struct(d)
}

// Validate checks the payment form
func (p PaymentDetails) Validate() error {
	return validate.Struct(p)
}
