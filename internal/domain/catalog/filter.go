// internal/domain/catalog/filter.go
package catalog

import (
	"cmp"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const AllCategories = "All Categories"

// Sort options
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
)

// PriceRange bounds are inclusive, in major units
type PriceRange struct {
	Label string          `json:"label"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
}

type SortOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var PriceRanges = []PriceRange{
	{Label: "All Prices", Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(1000)},
	{Label: "Under $25", Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(25)},
	{Label: "$25 - $50", Min: decimal.NewFromInt(25), Max: decimal.NewFromInt(50)},
	{Label: "$50 - $100", Min: decimal.NewFromInt(50), Max: decimal.NewFromInt(100)},
	{Label: "$100 & Above", Min: decimal.NewFromInt(100), Max: decimal.NewFromInt(1000)},
}

var SortOptions = []SortOption{
	{Label: "Newest", Value: SortNewest},
	{Label: "Price: Low to High", Value: SortPriceAsc},
	{Label: "Price: High to Low", Value: SortPriceDesc},
	{Label: "Name: A to Z", Value: SortNameAsc},
	{Label: "Name: Z to A", Value: SortNameDesc},
}

// Filter is the product listing state carried in the page query string
type Filter struct {
	Category   string `json:"category"`
	PriceRange int    `json:"price_range"`
	Sort       string `json:"sort"`
	OnSale     bool   `json:"on_sale"`
	New        bool   `json:"new"`
	Search     string `json:"search,omitempty"`
}

// DefaultFilter shows every product, newest first
func DefaultFilter() Filter {
	return Filter{Category: AllCategories, Sort: SortNewest}
}

// ParseFilter reads category, priceRange, sort, onSale, new and search.
// Unknown ranges and sorts fall back to the defaults.
func ParseFilter(q url.Values) Filter {
	f := DefaultFilter()

	if c := q.Get("category"); c != "" {
		f.Category = c
	}
	if i, err := strconv.Atoi(q.Get("priceRange")); err == nil && i >= 0 && i < len(PriceRanges) {
		f.PriceRange = i
	}
	if s := q.Get("sort"); slices.ContainsFunc(SortOptions, func(o SortOption) bool { return o.Value == s }) {
		f.Sort = s
	}
	f.OnSale = q.Get("onSale") == "true"
	f.New = q.Get("new") == "true"
	f.Search = q.Get("search")

	return f
}

// Query renders the non-default parts of the filter back into query parameters
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.Category != "" && f.Category != AllCategories {
		q.Set("category", f.Category)
	}
	if f.PriceRange > 0 {
		q.Set("priceRange", strconv.Itoa(f.PriceRange))
	}
	if f.Sort != "" && f.Sort != SortNewest {
		q.Set("sort", f.Sort)
	}
	if f.OnSale {
		q.Set("onSale", "true")
	}
	if f.New {
		q.Set("new", "true")
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// Apply narrows and orders products. The input slice is left untouched.
func (f Filter) Apply(products []Product) []Product {
	rng := PriceRanges[0]
	if f.PriceRange > 0 && f.PriceRange < len(PriceRanges) {
		rng = PriceRanges[f.PriceRange]
	}
	search := strings.ToLower(f.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
			continue
		}
		price := p.Price.Decimal()
		if price.LessThan(rng.Min) || price.GreaterThan(rng.Max) {
			continue
		}
		if f.OnSale && !p.IsSale {
			continue
		}
		if f.New && !p.IsNew {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(a.Price.Amount, b.Price.Amount) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Price.Amount, a.Price.Amount) })
	case SortNameAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return strings.Compare(a.Title, b.Title) })
	case SortNameDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return strings.Compare(b.Title, a.Title) })
	}

	return out
}

var suggestions = []string{
	"T-Shirts", "Hoodies", "Pants", "Shoes", "Accessories",
	"Summer collection", "Winter collection", "Sale items",
}

// Suggestions returns search suggestions containing the query, once it is longer than one character
func Suggestions(query string) []string {
	if len([]rune(query)) <= 1 {
		return []string{}
	}
	q := strings.ToLower(query)

	out := []string{}
	for _, s := range suggestions {
		if strings.Contains(strings.ToLower(s), q) {
			out = append(out, s)
		}
	}
	return out
}
