package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"github.com/your-org/storefront/internal/pkg/logger"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	menu       []commerce.Record[commerce.MenuItemAttributes]
	banners    []commerce.Record[commerce.BannerAttributes]
	products   []commerce.Record[commerce.ProductAttributes]
	categories []commerce.Record[commerce.CategoryAttributes]
	page       *commerce.Record[commerce.PageAttributes]

	bannersErr  error
	productsErr error
}

func (f *fakeBackend) called(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) MainMenu(context.Context) ([]commerce.Record[commerce.MenuItemAttributes], error) {
	f.called("menu")
	return f.menu, nil
}

func (f *fakeBackend) Banners(context.Context) ([]commerce.Record[commerce.BannerAttributes], error) {
	f.called("banners")
	return f.banners, f.bannersErr
}

func (f *fakeBackend) Products(_ context.Context, filters map[string]string) ([]commerce.Record[commerce.ProductAttributes], error) {
	f.called("products")
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	if filters["featured"] == "true" {
		return f.products[:1], nil
	}
	return f.products, nil
}

func (f *fakeBackend) Product(_ context.Context, id string) (commerce.Record[commerce.ProductAttributes], error) {
	f.called("product")
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return commerce.Record[commerce.ProductAttributes]{}, &commerce.APIError{StatusCode: 404}
}

func (f *fakeBackend) Categories(context.Context) ([]commerce.Record[commerce.CategoryAttributes], error) {
	f.called("categories")
	return f.categories, nil
}

func (f *fakeBackend) HomepageContent(context.Context) (commerce.Record[commerce.PageAttributes], error) {
	f.called("page")
	if f.page == nil {
		return commerce.Record[commerce.PageAttributes]{}, &commerce.APIError{StatusCode: 404}
	}
	return *f.page, nil
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string][]byte{}
	}
	c.data[key] = raw
	return nil
}

func productRecord(id, title, price, category string) commerce.Record[commerce.ProductAttributes] {
	return commerce.Record[commerce.ProductAttributes]{
		ID: id,
		Attributes: commerce.ProductAttributes{
			Title:    title,
			Price:    decimal.RequireFromString(price),
			Category: commerce.TermReference{Name: category},
		},
	}
}

func newBackend() *fakeBackend {
	return &fakeBackend{
		banners: []commerce.Record[commerce.BannerAttributes]{
			{ID: "b1", Attributes: commerce.BannerAttributes{Title: "Summer", Link: "/products?new=true"}},
		},
		products: []commerce.Record[commerce.ProductAttributes]{
			productRecord("1", "Men's Casual T-Shirt", "29.99", "Men's Clothing"),
			productRecord("3", "Casual Sneakers", "79.99", "Footwear"),
			productRecord("7", "Running Shoes", "99.99", "Footwear"),
		},
		categories: []commerce.Record[commerce.CategoryAttributes]{
			{ID: "c1", Attributes: commerce.CategoryAttributes{Name: "Footwear"}},
		},
	}
}

func newService(backend catalog.Backend, cache catalog.Cache) *catalog.Service {
	return catalog.NewService(backend, cache, config.CatalogConfig{CacheTTL: time.Minute}, currency.USD, logger.Discard())
}

func TestService_GetProducts(t *testing.T) {
	svc := newService(newBackend(), nil)

	got, err := svc.GetProducts(t.Context(), catalog.Filter{Category: "Footwear", Sort: catalog.SortPriceDesc})
	require.NoError(t, err)

	assert.Equal(t, []int64{7, 3}, productIDs(got))
	assert.Equal(t, "99.99", got[0].Price.String())
	assert.True(t, got[0].InStock)
	assert.Equal(t, catalog.DefaultStockQuantity, got[0].MaxQuantity())
}

func TestService_GetProducts_InvalidID(t *testing.T) {
	backend := newBackend()
	backend.products = append(backend.products, productRecord("not-a-number", "Broken", "1.00", "Footwear"))

	_, err := newService(backend, nil).GetProducts(t.Context(), catalog.DefaultFilter())
	require.ErrorIs(t, err, catalog.ErrInvalidProductID)
}

func TestService_GetProduct(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "existing product: ok", id: "3"},
		{name: "missing product: error", id: "404", wantErr: catalog.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(newBackend(), nil)

			got, err := svc.GetProduct(t.Context(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(3), got.ID)
			assert.Equal(t, "Casual Sneakers", got.Title)
		})
	}
}

func TestService_CachesListResponses(t *testing.T) {
	backend := newBackend()
	svc := newService(backend, &memoryCache{})

	for range 3 {
		_, err := svc.GetProducts(t.Context(), catalog.DefaultFilter())
		require.NoError(t, err)
		_, err = svc.GetCategories(t.Context())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, backend.count("products"))
	assert.Equal(t, 1, backend.count("categories"))

	got, err := svc.GetProducts(t.Context(), catalog.Filter{Sort: catalog.SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, "29.99", got[0].Price.String())
	assert.Equal(t, currency.USD, got[0].Price.Currency)
}

func TestService_Home(t *testing.T) {
	backend := newBackend()
	backend.page = &commerce.Record[commerce.PageAttributes]{
		ID: "home",
		Attributes: commerce.PageAttributes{
			Title: "Welcome",
			Body:  commerce.TextField{Value: "raw", Processed: "<p>New arrivals weekly</p>"},
		},
	}
	svc := newService(backend, nil)

	home, err := svc.Home(t.Context())
	require.NoError(t, err)

	require.NotNil(t, home.Intro)
	assert.Equal(t, catalog.Page{Title: "Welcome", Body: "<p>New arrivals weekly</p>"}, *home.Intro)
	assert.Len(t, home.Banners, 1)
	assert.Equal(t, []int64{1}, productIDs(home.Featured))
	assert.Len(t, home.Categories, 1)
}

func TestService_Home_PartialFailure(t *testing.T) {
	backend := newBackend()
	backend.bannersErr = errors.New("connection refused")
	backend.productsErr = errors.New("connection refused")

	home, err := newService(backend, nil).Home(t.Context())
	require.NoError(t, err)

	assert.Empty(t, home.Banners)
	assert.NotNil(t, home.Banners)
	assert.Empty(t, home.Featured)
	assert.Len(t, home.Categories, 1)
	assert.Nil(t, home.Intro)
}

func TestService_Home_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newService(newBackend(), nil).Home(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestService_Menu(t *testing.T) {
	backend := newBackend()
	backend.menu = []commerce.Record[commerce.MenuItemAttributes]{
		menuRecord("shop", "Shop", 0, ""),
	}

	menu, err := newService(backend, nil).Menu(t.Context())
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Shop", menu[0].Title)
}

func TestProduct_CheckQuantity(t *testing.T) {
	tests := []struct {
		name     string
		product  catalog.Product
		quantity int
		wantErr  error
	}{
		{
			name:     "within stock: ok",
			product:  catalog.Product{InStock: true, StockQuantity: 25},
			quantity: 25,
		},
		{
			name:     "above stock: error",
			product:  catalog.Product{InStock: true, StockQuantity: 25},
			quantity: 26,
			wantErr:  catalog.ErrInvalidQuantity,
		},
		{
			name:     "default maximum of ten: ok",
			product:  catalog.Product{InStock: true},
			quantity: 10,
		},
		{
			name:     "above default maximum: error",
			product:  catalog.Product{InStock: true},
			quantity: 11,
			wantErr:  catalog.ErrInvalidQuantity,
		},
		{
			name:     "zero quantity: error",
			product:  catalog.Product{InStock: true},
			quantity: 0,
			wantErr:  catalog.ErrInvalidQuantity,
		},
		{
			name:     "out of stock: error",
			product:  catalog.Product{InStock: false, StockQuantity: 5},
			quantity: 1,
			wantErr:  catalog.ErrOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.CheckQuantity(tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
