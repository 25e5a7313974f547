// internal/domain/catalog/entity.go
package catalog

import (
	"errors"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/money"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("product is out of stock")
	ErrInvalidQuantity  = errors.New("quantity is not available")
	ErrInvalidProductID = errors.New("product id is not valid")
)

// DefaultStockQuantity is the selectable maximum when the backend reports no stock count
const DefaultStockQuantity = 10

// Product is a catalog entry as the storefront pages show it
type Product struct {
	ID                 int64        `json:"id"`
	UUID               string       `json:"uuid,omitempty"`
	Title              string       `json:"title"`
	Description        string       `json:"description,omitempty"`
	Price              money.Money  `json:"price"`
	OriginalPrice      *money.Money `json:"original_price,omitempty"`
	Image              string       `json:"image"`
	Images             []string     `json:"images,omitempty"`
	Category           string       `json:"category"`
	IsNew              bool         `json:"is_new"`
	IsSale             bool         `json:"is_sale"`
	DiscountPercentage int          `json:"discount_percentage,omitempty"`
	InStock            bool         `json:"in_stock"`
	StockQuantity      int          `json:"stock_quantity"`
	Colors             []string     `json:"colors,omitempty"`
	Sizes              []string     `json:"sizes,omitempty"`
	Features           []string     `json:"features,omitempty"`
	Rating             float64      `json:"rating,omitempty"`
	Reviews            int          `json:"reviews,omitempty"`
}

// MaxQuantity is the largest quantity a shopper may select for the product
func (p Product) MaxQuantity() int {
	if p.StockQuantity > 0 {
		return p.StockQuantity
	}
	return DefaultStockQuantity
}

// CheckQuantity validates a requested quantity against the product's stock
func (p Product) CheckQuantity(quantity int) error {
	if !p.InStock {
		return ErrOutOfStock
	}
	if quantity < 1 || quantity > p.MaxQuantity() {
		return ErrInvalidQuantity
	}
	return nil
}

// CartProduct is the product reference the cart stores for the given variant
func (p Product) CartProduct(variant string) cart.Product {
	return cart.Product{
		ID:      p.ID,
		Title:   p.Title,
		Price:   p.Price,
		Image:   p.Image,
		Variant: variant,
	}
}

// Category is a product category term
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Weight      int    `json:"weight"`
}

// Banner is a homepage hero banner
type Banner struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Link  string `json:"link"`
	Text  string `json:"text"`
}

// Page is an editorial content page
type Page struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Home is everything the landing page renders
type Home struct {
	Intro      *Page      `json:"intro,omitempty"`
	Banners    []Banner   `json:"banners"`
	Featured   []Product  `json:"featured"`
	Categories []Category `json:"categories"`
}
