// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// ProductFinder looks up the product a shopper adds to the cart
type ProductFinder interface {
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
}

// CartHandler handles cart endpoints
type CartHandler struct {
	products   ProductFinder
	calculator *pricing.Calculator
}

// NewCartHandler creates a new cart handler
func NewCartHandler(products ProductFinder, calculator *pricing.Calculator) *CartHandler {
	return &CartHandler{
		products:   products,
		calculator: calculator,
	}
}

// AddToCartRequest is the product detail page's add-to-cart form
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1,max=10000"`
	Variant   string `json:"variant" binding:"max=100"`
}

// UpdateCartItemRequest sets a line quantity. Zero removes the line; the upper bound is
// cart.MaxLineQuantity.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0,max=10000"`
}

// PromoRequest carries a promo code
type PromoRequest struct {
	Code string `json:"code" binding:"required,max=50"`
}

// CartResponse is the cart page state. The quote assumes standard shipping.
type CartResponse struct {
	Items     []cart.LineItem `json:"items"`
	ItemCount int             `json:"item_count"`
	PromoCode string          `json:"promo_code,omitempty"`
	Quote     pricing.Quote   `json:"quote"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	h.respondCart(c, http.StatusOK, "Cart retrieved successfully")
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}
	quantity := max(req.Quantity, 1)

	product, err := h.products.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	// stock bounds the line total, not just this request
	sess := middleware.GetSession(c)
	inCart := 0
	if line, ok := sess.Cart.Item(product.ID); ok {
		inCart = line.Quantity
	}
	if err := product.CheckQuantity(inCart + quantity); err != nil {
		respondError(c, err)
		return
	}

	if err := sess.Cart.Add(product.CartProduct(req.Variant), quantity); err != nil {
		respondError(c, err)
		return
	}

	h.respondCart(c, http.StatusOK, "Item added to cart successfully")
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := h.lineID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := middleware.GetSession(c).Cart.UpdateQuantity(id, *req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	h.respondCart(c, http.StatusOK, "Cart item updated successfully")
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := h.lineID(c)
	if !ok {
		return
	}

	middleware.GetSession(c).Cart.Remove(id)

	h.respondCart(c, http.StatusOK, "Item removed from cart successfully")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	middleware.GetSession(c).Cart.Clear()

	h.respondCart(c, http.StatusOK, "Cart cleared successfully")
}

// ApplyPromo handles POST /cart/promo
func (h *CartHandler) ApplyPromo(c *gin.Context) {
	var req PromoRequest
	if !bindJSON(c, &req) {
		return
	}

	promo, err := h.calculator.Promotion(req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetSession(c).PromoCode = promo.Code

	h.respondCart(c, http.StatusOK, "Promo code applied successfully")
}

// RemovePromo handles DELETE /cart/promo
func (h *CartHandler) RemovePromo(c *gin.Context) {
	middleware.GetSession(c).PromoCode = ""

	h.respondCart(c, http.StatusOK, "Promo code removed successfully")
}

func (h *CartHandler) lineID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return 0, false
	}

	if _, ok := middleware.GetSession(c).Cart.Item(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
		return 0, false
	}
	return id, true
}

func (h *CartHandler) respondCart(c *gin.Context, status int, message string) {
	resp, err := h.cartResponse(middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(status, gin.H{
		"message": message,
		"data":    resp,
	})
}

func (h *CartHandler) cartResponse(sess *session.Session) (*CartResponse, error) {
	quote, err := h.calculator.Quote(sess.Cart.Total(), pricing.MethodStandard, sess.PromoCode)
	if err != nil {
		return nil, err
	}

	return &CartResponse{
		Items:     sess.Cart.Items(),
		ItemCount: sess.Cart.Quantity(),
		PromoCode: sess.PromoCode,
		Quote:     quote,
	}, nil
}
