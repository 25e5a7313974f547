// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/account"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/logger"
)

const sessionSweepInterval = time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg.Logging)
	log.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting storefront")

	cur, err := cfg.StoreCurrency()
	if err != nil {
		log.WithError(err).Fatal("Invalid store currency")
	}
	taxRate, err := cfg.TaxRate()
	if err != nil {
		log.WithError(err).Fatal("Invalid tax rate")
	}
	locale, err := cfg.StoreLocale()
	if err != nil {
		log.WithError(err).Fatal("Invalid store locale")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to Redis when sessions, rate limiting or the catalog cache need it
	var redisClient *redis.Client
	var catalogCache catalog.Cache
	if cfg.UsesRedis() {
		redisClient, err = redis.NewConnection(cfg, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()
		catalogCache = redisClient
	}

	var store session.Store
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		store = session.NewRedisStore(redisClient, cfg.Session.TTL)
	default:
		memory := session.NewMemoryStore(cfg.Session.TTL)
		go memory.RunSweeper(ctx, sessionSweepInterval, log)
		store = memory
	}
	log.WithField("store", cfg.Session.Store).Info("Session store ready")

	sessions := session.NewManager(store, auth.NewJWTManager(cfg.Session, cfg.App.Name), cur, log)

	client := commerce.NewClient(cfg.Commerce, log)
	calculator := pricing.NewCalculator(cur, pricing.WithTaxRate(taxRate), pricing.WithLocale(locale))

	var submitter checkout.OrderSubmitter
	if cfg.Checkout.SubmitOrders {
		submitter = checkout.NewCommerceSubmitter(client)
		log.Info("Orders are submitted to the commerce backend")
	}

	server := http.NewServer(cfg, log, http.Dependencies{
		Sessions: sessions,
		Redis:    redisClient,
		Services: routes.Services{
			Catalog:    catalog.NewService(client, catalogCache, cfg.Catalog, cur, log),
			Calculator: calculator,
			Checkout:   checkout.NewService(calculator, submitter, log),
			Accounts:   account.NewService(client, cur, log),
			Logger:     log,
		},
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("HTTP server failed")
		}
	case <-ctx.Done():
		log.Info("Shutting down gracefully")
	}

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("Server shutdown completed")
}
