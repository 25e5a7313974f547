// internal/domain/catalog/mapper.go
package catalog

import (
	"fmt"
	"strconv"

	"github.com/your-org/storefront/internal/domain/money"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"golang.org/x/text/currency"
)

func toProduct(rec commerce.Record[commerce.ProductAttributes], cur currency.Unit) (Product, error) {
	attrs := rec.Attributes

	id := attrs.InternalID
	if id == 0 {
		parsed, err := strconv.ParseInt(rec.ID, 10, 64)
		if err != nil {
			return Product{}, fmt.Errorf("product[%s]: %w", rec.ID, ErrInvalidProductID)
		}
		id = parsed
	}

	p := Product{
		ID:                 id,
		UUID:               rec.ID,
		Title:              attrs.Title,
		Description:        attrs.Body.Value,
		Price:              money.FromDecimal(attrs.Price, cur),
		Image:              attrs.Image.URI.URL,
		Category:           attrs.Category.Name,
		IsNew:              attrs.IsNew,
		IsSale:             attrs.IsSale,
		DiscountPercentage: attrs.DiscountPercentage,
		InStock:            attrs.InStock == nil || *attrs.InStock,
		StockQuantity:      attrs.StockQuantity,
		Colors:             attrs.Colors,
		Sizes:              attrs.Sizes,
		Features:           attrs.Features,
		Rating:             attrs.Rating,
		Reviews:            attrs.Reviews,
	}

	if attrs.OriginalPrice != nil {
		original := money.FromDecimal(*attrs.OriginalPrice, cur)
		p.OriginalPrice = &original
	}

	for _, img := range attrs.Images {
		p.Images = append(p.Images, img.URI.URL)
	}
	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}

	return p, nil
}

func toProducts(recs []commerce.Record[commerce.ProductAttributes], cur currency.Unit) ([]Product, error) {
	products := make([]Product, 0, len(recs))
	for _, rec := range recs {
		p, err := toProduct(rec, cur)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func toCategory(rec commerce.Record[commerce.CategoryAttributes]) Category {
	return Category{
		ID:          rec.ID,
		Name:        rec.Attributes.Name,
		Description: rec.Attributes.Description.Value,
		Weight:      rec.Attributes.Weight,
	}
}

func toBanner(rec commerce.Record[commerce.BannerAttributes]) Banner {
	return Banner{
		ID:    rec.ID,
		Title: rec.Attributes.Title,
		Image: rec.Attributes.Image.URI.URL,
		Link:  rec.Attributes.Link,
		Text:  rec.Attributes.Text,
	}
}

func toPage(rec commerce.Record[commerce.PageAttributes]) Page {
	body := rec.Attributes.Body.Processed
	if body == "" {
		body = rec.Attributes.Body.Value
	}
	return Page{Title: rec.Attributes.Title, Body: body}
}
