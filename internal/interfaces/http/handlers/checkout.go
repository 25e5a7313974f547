// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler walks the session's checkout draft through its steps
type CheckoutHandler struct {
	checkout *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc}
}

// ShippingRequest is the shipping form plus the chosen shipping method
type ShippingRequest struct {
	checkout.ShippingDetails
	ShippingMethod string `json:"shipping_method"`
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	h.respondSummary(c, "Checkout retrieved successfully")
}

// SubmitShipping handles PUT /checkout/shipping
func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess.Cart.Len() == 0 {
		respondError(c, checkout.ErrEmptyCart)
		return
	}

	var req ShippingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.checkout.SubmitShipping(sess.Checkout, req.ShippingDetails, req.ShippingMethod); err != nil {
		respondError(c, err)
		return
	}

	h.respondSummary(c, "Shipping details saved")
}

// SubmitPayment handles PUT /checkout/payment
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess.Cart.Len() == 0 {
		respondError(c, checkout.ErrEmptyCart)
		return
	}

	var req checkout.PaymentDetails
	if !bindJSON(c, &req) {
		return
	}

	if err := h.checkout.SubmitPayment(sess.Checkout, req); err != nil {
		respondError(c, err)
		return
	}

	h.respondSummary(c, "Payment details saved")
}

// Back handles POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	middleware.GetSession(c).Checkout.Back()

	h.respondSummary(c, "Returned to previous step")
}

// PlaceOrder handles POST /checkout/orders
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sess := middleware.GetSession(c)

	ctx := commerce.WithToken(c.Request.Context(), sess.Token())
	confirmation, err := h.checkout.PlaceOrder(ctx, sess.Cart, sess.Checkout, sess.PromoCode)
	if err != nil {
		respondError(c, err)
		return
	}
	sess.PromoCode = ""

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    confirmation,
	})
}

func (h *CheckoutHandler) respondSummary(c *gin.Context, message string) {
	sess := middleware.GetSession(c)

	summary, err := h.checkout.GetSummary(sess.Cart, sess.Checkout, sess.PromoCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    summary,
	})
}
