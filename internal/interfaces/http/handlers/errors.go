// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/your-org/storefront/internal/domain/account"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// respondError maps domain and backend errors to status codes. Server-side failures are
// attached to the context so the request logger records them.
func respondError(c *gin.Context, err error) {
	var (
		validationErrs validator.ValidationErrors
		apiErr         *commerce.APIError
		urlErr         *url.Error
	)

	switch {
	case errors.Is(err, account.ErrLoginRequired):
		middleware.AbortLoginRequired(c)

	case errors.As(err, &validationErrs):
		middleware.HandleValidationError(c, err)

	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, account.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})

	case errors.Is(err, pricing.ErrInvalidPromoCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo code"})
	case errors.Is(err, pricing.ErrUnknownShippingMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown shipping method"})

	case errors.Is(err, catalog.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
	case errors.Is(err, catalog.ErrInvalidQuantity), errors.Is(err, cart.ErrQuantityLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requested quantity is not available"})
	case errors.Is(err, cart.ErrCurrencyMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": "Product is not sold in the store currency"})

	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Your cart is empty",
			"redirect": "/cart",
		})
	case errors.Is(err, checkout.ErrIncompleteCheckout):
		c.JSON(http.StatusConflict, gin.H{"error": "Complete the previous checkout steps first"})

	case errors.Is(err, account.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, commerce.ErrUnauthorized):
		_ = c.Error(err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized by the commerce backend"})

	case errors.As(err, &apiErr), errors.As(err, &urlErr), errors.Is(err, catalog.ErrInvalidProductID):
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Commerce backend unavailable"})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSON decodes the request body and answers 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}
