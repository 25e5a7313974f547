// internal/interfaces/http/handlers/account.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/account"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// AccountHandler serves the signed-in customer's pages
type AccountHandler struct {
	accounts *account.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// GetAccount handles GET /account
func (h *AccountHandler) GetAccount(c *gin.Context) {
	profile, err := h.accounts.CurrentUser(middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account retrieved successfully",
		"data":    profile,
	})
}

// ListOrders handles GET /orders, optionally searching by id or item title with ?q=
func (h *AccountHandler) ListOrders(c *gin.Context) {
	orders, err := h.accounts.Orders(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}

	orders = account.FilterOrders(orders, c.Query("q"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// GetOrder handles GET /orders/:id
func (h *AccountHandler) GetOrder(c *gin.Context) {
	order, err := h.accounts.Order(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    order,
	})
}
