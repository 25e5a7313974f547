// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/currency"
)

const cachePrefix = "storefront:catalog:"

// Backend is the part of the commerce client the catalog reads from
type Backend interface {
	MainMenu(ctx context.Context) ([]commerce.Record[commerce.MenuItemAttributes], error)
	Banners(ctx context.Context) ([]commerce.Record[commerce.BannerAttributes], error)
	Products(ctx context.Context, filters map[string]string) ([]commerce.Record[commerce.ProductAttributes], error)
	Product(ctx context.Context, id string) (commerce.Record[commerce.ProductAttributes], error)
	Categories(ctx context.Context) ([]commerce.Record[commerce.CategoryAttributes], error)
	HomepageContent(ctx context.Context) (commerce.Record[commerce.PageAttributes], error)
}

// Service serves the read-only catalog pages
type Service struct {
	backend  Backend
	cache    Cache
	ttl      time.Duration
	currency currency.Unit
	logger   logrus.FieldLogger
}

// NewService creates a catalog service. A nil cache disables caching.
func NewService(backend Backend, cache Cache, cfg config.CatalogConfig, cur currency.Unit, logger logrus.FieldLogger) *Service {
	if cache == nil {
		cache = NoCache{}
	}
	return &Service{
		backend:  backend,
		cache:    cache,
		ttl:      cfg.CacheTTL,
		currency: cur,
		logger:   logger,
	}
}

// Menu returns the main navigation tree
func (s *Service) Menu(ctx context.Context) ([]MenuItem, error) {
	return cached(ctx, s, "menu", func(ctx context.Context) ([]MenuItem, error) {
		recs, err := s.backend.MainMenu(ctx)
		if err != nil {
			return nil, err
		}
		return BuildMenu(recs), nil
	})
}

// GetProducts returns the products matching the listing filter
func (s *Service) GetProducts(ctx context.Context, f Filter) ([]Product, error) {
	products, err := s.listProducts(ctx, nil)
	if err != nil {
		return nil, err
	}
	return f.Apply(products), nil
}

// Featured returns the products flagged for the home page
func (s *Service) Featured(ctx context.Context) ([]Product, error) {
	return s.listProducts(ctx, map[string]string{"featured": "true"})
}

// GetProduct returns one product. Missing products yield ErrProductNotFound.
func (s *Service) GetProduct(ctx context.Context, id string) (Product, error) {
	product, err := cached(ctx, s, "product:"+id, func(ctx context.Context) (Product, error) {
		rec, err := s.backend.Product(ctx, id)
		if err != nil {
			return Product{}, err
		}
		return toProduct(rec, s.currency)
	})
	if errors.Is(err, commerce.ErrNotFound) {
		return Product{}, fmt.Errorf("catalog.GetProduct[%s]: %w", id, ErrProductNotFound)
	}
	return product, err
}

// GetCategories returns the product categories
func (s *Service) GetCategories(ctx context.Context) ([]Category, error) {
	return cached(ctx, s, "categories", func(ctx context.Context) ([]Category, error) {
		recs, err := s.backend.Categories(ctx)
		if err != nil {
			return nil, err
		}
		categories := make([]Category, 0, len(recs))
		for _, rec := range recs {
			categories = append(categories, toCategory(rec))
		}
		return categories, nil
	})
}

// Banners returns the homepage banners
func (s *Service) Banners(ctx context.Context) ([]Banner, error) {
	return cached(ctx, s, "banners", func(ctx context.Context) ([]Banner, error) {
		recs, err := s.backend.Banners(ctx)
		if err != nil {
			return nil, err
		}
		banners := make([]Banner, 0, len(recs))
		for _, rec := range recs {
			banners = append(banners, toBanner(rec))
		}
		return banners, nil
	})
}

// Home loads the intro copy, banners, featured products and categories concurrently.
// A failed section is logged and left empty; only a cancelled context fails the page.
func (s *Service) Home(ctx context.Context) (Home, error) {
	home := Home{Banners: []Banner{}, Featured: []Product{}, Categories: []Category{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := cached(gctx, s, "page:home", func(ctx context.Context) (Page, error) {
			rec, err := s.backend.HomepageContent(ctx)
			if err != nil {
				return Page{}, err
			}
			return toPage(rec), nil
		})
		if err != nil {
			// optional editorial content
			s.logger.WithError(err).Warn("Error fetching homepage content")
			return nil
		}
		home.Intro = &page
		return nil
	})
	g.Go(func() error {
		banners, err := s.Banners(gctx)
		if err != nil {
			s.logger.WithError(err).Error("Error fetching banners")
			return nil
		}
		home.Banners = banners
		return nil
	})
	g.Go(func() error {
		featured, err := s.Featured(gctx)
		if err != nil {
			s.logger.WithError(err).Error("Error fetching featured products")
			return nil
		}
		home.Featured = featured
		return nil
	})
	g.Go(func() error {
		categories, err := s.GetCategories(gctx)
		if err != nil {
			s.logger.WithError(err).Error("Error fetching categories")
			return nil
		}
		home.Categories = categories
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Home{}, fmt.Errorf("catalog.Home: %w", err)
	}
	return home, nil
}

func (s *Service) listProducts(ctx context.Context, filters map[string]string) ([]Product, error) {
	key := "products"
	if len(filters) > 0 {
		q := url.Values{}
		for k, v := range filters {
			q.Set(k, v)
		}
		key += "?" + q.Encode()
	}

	return cached(ctx, s, key, func(ctx context.Context) ([]Product, error) {
		recs, err := s.backend.Products(ctx, filters)
		if err != nil {
			return nil, err
		}
		return toProducts(recs, s.currency)
	})
}

// cached reads key from the cache, falling back to load and storing its result.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *Service, key string, load func(context.Context) (T, error)) (T, error) {
	key = cachePrefix + key

	var value T
	found, err := s.cache.GetJSON(ctx, key, &value)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("catalog cache read failed")
	}
	if found {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := s.cache.SetJSON(ctx, key, value, s.ttl); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("catalog cache write failed")
	}
	return value, nil
}
