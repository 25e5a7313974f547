// internal/domain/catalog/cache.go
package catalog

import (
	"context"
	"time"
)

// Cache keeps catalog responses between requests
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error
}

// NoCache is used when Redis is not configured
type NoCache struct{}

func (NoCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (NoCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
