// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CatalogHandler serves the read-only shop pages
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// GetMenu handles GET /menu
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	menu, err := h.catalog.Menu(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu retrieved successfully",
		"data":    menu,
	})
}

// GetHome handles GET /home
func (h *CatalogHandler) GetHome(c *gin.Context) {
	home, err := h.catalog.Home(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Home page retrieved successfully",
		"data":    home,
	})
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// ListProducts handles GET /products with the listing filter in the query string
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := catalog.ParseFilter(c.Request.URL.Query())

	products, err := h.catalog.GetProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products":     products,
			"count":        len(products),
			"filter":       filter,
			"query":        filter.Query().Encode(),
			"price_ranges": catalog.PriceRanges,
			"sort_options": catalog.SortOptions,
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data": gin.H{
			"product":      product,
			"max_quantity": product.MaxQuantity(),
		},
	})
}

// GetSuggestions handles GET /search/suggestions?q=
func (h *CatalogHandler) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Suggestions retrieved successfully",
		"data":    catalog.Suggestions(c.Query("q")),
	})
}
