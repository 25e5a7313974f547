// internal/infrastructure/commerce/products.go
package commerce

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/shopspring/decimal"
)

// ProductAttributes is a commerce product as exposed by the backend
type ProductAttributes struct {
	InternalID         int64            `json:"drupal_internal__product_id"`
	Title              string           `json:"title"`
	Body               TextField        `json:"body"`
	Price              decimal.Decimal  `json:"field_price"`
	OriginalPrice      *decimal.Decimal `json:"field_original_price"`
	Image              FileField        `json:"field_image"`
	Images             []FileField      `json:"field_images"`
	Category           TermReference    `json:"field_category"`
	IsNew              bool             `json:"field_is_new"`
	IsSale             bool             `json:"field_is_sale"`
	DiscountPercentage int              `json:"field_discount_percentage"`
	InStock            *bool            `json:"field_in_stock"`
	StockQuantity      int              `json:"field_stock_quantity"`
	Colors             []string         `json:"field_colors"`
	Sizes              []string         `json:"field_sizes"`
	Features           []string         `json:"field_features"`
	Rating             float64          `json:"field_rating"`
	Reviews            int              `json:"field_review_count"`
}

// TermReference is an embedded taxonomy term
type TermReference struct {
	Name string `json:"name"`
}

// CategoryAttributes is a product category taxonomy term
type CategoryAttributes struct {
	Name        string    `json:"name"`
	Description TextField `json:"description"`
	Weight      int       `json:"weight"`
}

// Products lists products, narrowed by JSON:API filters. Empty filter values are skipped.
func (c *Client) Products(ctx context.Context, filters map[string]string) ([]Record[ProductAttributes], error) {
	products, err := getCollection[ProductAttributes](ctx, c, "/jsonapi/commerce_product/default", filterQuery(filters), true)
	if err != nil {
		return nil, fmt.Errorf("client.Products: %w", err)
	}
	return products, nil
}

// Product returns a single product by id
func (c *Client) Product(ctx context.Context, id string) (Record[ProductAttributes], error) {
	product, err := getOne[ProductAttributes](ctx, c, "/jsonapi/commerce_product/default/"+url.PathEscape(id))
	if err != nil {
		return Record[ProductAttributes]{}, fmt.Errorf("client.Product: %w", err)
	}
	return product, nil
}

// Categories returns the product category terms
func (c *Client) Categories(ctx context.Context) ([]Record[CategoryAttributes], error) {
	categories, err := getCollection[CategoryAttributes](ctx, c, "/jsonapi/taxonomy_term/product_category", nil, true)
	if err != nil {
		return nil, fmt.Errorf("client.Categories: %w", err)
	}
	return categories, nil
}

func filterQuery(filters map[string]string) url.Values {
	keys := make([]string, 0, len(filters))
	for k, v := range filters {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	query := url.Values{}
	for _, k := range keys {
		query.Add(fmt.Sprintf("filter[%s]", k), filters[k])
	}
	return query
}
