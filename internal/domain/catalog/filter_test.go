package catalog_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/money"
	"golang.org/x/text/currency"
)

func demoProducts() []catalog.Product {
	p := func(id int64, title, price, category string, isNew, isSale bool) catalog.Product {
		return catalog.Product{
			ID:       id,
			Title:    title,
			Price:    money.MustParse(price, currency.USD),
			Category: category,
			IsNew:    isNew,
			IsSale:   isSale,
			InStock:  true,
		}
	}
	return []catalog.Product{
		p(1, "Men's Casual T-Shirt", "29.99", "Men's Clothing", false, true),
		p(2, "Women's Summer Dress", "49.99", "Women's Clothing", true, false),
		p(3, "Casual Sneakers", "79.99", "Footwear", false, false),
		p(4, "Leather Backpack", "89.99", "Accessories", true, false),
		p(5, "Denim Jacket", "69.99", "Men's Clothing", false, false),
		p(6, "Women's Blouse", "39.99", "Women's Clothing", false, true),
		p(7, "Running Shoes", "99.99", "Footwear", true, false),
		p(8, "Sunglasses", "59.99", "Accessories", false, false),
	}
}

func productIDs(products []catalog.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  catalog.Filter
	}{
		{
			name:  "empty query: ok",
			query: "",
			want:  catalog.DefaultFilter(),
		},
		{
			name:  "all params: ok",
			query: "category=Footwear&priceRange=3&sort=price_desc&onSale=true&new=true&search=shoe",
			want: catalog.Filter{
				Category:   "Footwear",
				PriceRange: 3,
				Sort:       catalog.SortPriceDesc,
				OnSale:     true,
				New:        true,
				Search:     "shoe",
			},
		},
		{
			name:  "unknown range and sort fall back: ok",
			query: "priceRange=9&sort=random&onSale=yes",
			want:  catalog.DefaultFilter(),
		},
		{
			name:  "negative range falls back: ok",
			query: "priceRange=-1",
			want:  catalog.DefaultFilter(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}

			got := catalog.ParseFilter(q)
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestFilter_Query(t *testing.T) {
	f := catalog.Filter{Category: "Footwear", PriceRange: 2, Sort: catalog.SortNameAsc, New: true}

	assert.Equal(t, "category=Footwear&new=true&priceRange=2&sort=name_asc", f.Query().Encode())
	assert.Empty(t, catalog.DefaultFilter().Query().Encode())
	assert.Equal(t, f, catalog.ParseFilter(f.Query()))
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter catalog.Filter
		want   []int64
	}{
		{
			name:   "default keeps backend order: ok",
			filter: catalog.DefaultFilter(),
			want:   []int64{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name:   "category: ok",
			filter: catalog.Filter{Category: "Footwear", Sort: catalog.SortNewest},
			want:   []int64{3, 7},
		},
		{
			name:   "under 25: ok",
			filter: catalog.Filter{Category: catalog.AllCategories, PriceRange: 1},
			want:   []int64{},
		},
		{
			name:   "25 to 50 inclusive: ok",
			filter: catalog.Filter{Category: catalog.AllCategories, PriceRange: 2},
			want:   []int64{1, 2, 6},
		},
		{
			name:   "on sale: ok",
			filter: catalog.Filter{OnSale: true},
			want:   []int64{1, 6},
		},
		{
			name:   "new sorted by price descending: ok",
			filter: catalog.Filter{New: true, Sort: catalog.SortPriceDesc},
			want:   []int64{7, 4, 2},
		},
		{
			name:   "search matches category case-insensitively: ok",
			filter: catalog.Filter{Search: "WOMEN"},
			want:   []int64{2, 6},
		},
		{
			name:   "search matches title: ok",
			filter: catalog.Filter{Search: "casual"},
			want:   []int64{1, 3},
		},
		{
			name:   "price ascending: ok",
			filter: catalog.Filter{Sort: catalog.SortPriceAsc},
			want:   []int64{1, 6, 2, 8, 5, 3, 4, 7},
		},
		{
			name:   "name descending: ok",
			filter: catalog.Filter{Sort: catalog.SortNameDesc},
			want:   []int64{2, 6, 8, 7, 1, 4, 5, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := demoProducts()

			got := tt.filter.Apply(products)

			assert.Equal(t, tt.want, productIDs(got))
			assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, productIDs(products))
		})
	}
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "single character: ok", query: "s", want: []string{}},
		{name: "collection: ok", query: "COLL", want: []string{"Summer collection", "Winter collection"}},
		{name: "shirts: ok", query: "sh", want: []string{"T-Shirts", "Shoes"}},
		{name: "no match: ok", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Suggestions(tt.query))
		})
	}
}
