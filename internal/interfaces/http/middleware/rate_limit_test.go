package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/logger"
)

func TestRateLimit_Redis(t *testing.T) {
	if testing.Short() {
		t.Skip("redis container tests are skipped in short mode")
	}

	ctx := t.Context()
	container, err := tcredis.Run(ctx, "redis:7.4-alpine")
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	u, err := url.Parse(connStr)
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: u.Host})
	t.Cleanup(func() { _ = rdb.Close() })

	engine := gin.New()
	engine.Use(RateLimit(config.SecurityConfig{RateLimitPerMinute: 2}, rdb, logger.Discard()))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i, want := range []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests} {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, want, w.Code, "request %d", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	ttl, err := rdb.TTL(ctx, "storefront:rate_limit:192.0.2.1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}
