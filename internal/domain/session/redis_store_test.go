package session_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/money"
	"github.com/your-org/storefront/internal/domain/session"
	storeredis "github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/pkg/logger"
	"golang.org/x/text/currency"
)

type redisStoreSuite struct {
	suite.Suite

	client *storeredis.Client
	store  *session.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("redis container tests are skipped in short mode")
	}
	suite.Run(t, new(redisStoreSuite))
}

func (suite *redisStoreSuite) SetupSuite() {
	ctx := suite.T().Context()

	container, err := tcredis.Run(ctx, "redis:7.4-alpine")
	suite.Require().NoError(err)

	connStr, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	u, err := url.Parse(connStr)
	suite.Require().NoError(err)

	suite.client, err = storeredis.NewConnection(&config.Config{Redis: config.RedisConfig{
		Host:     u.Hostname(),
		Port:     u.Port(),
		PoolSize: 2,
	}}, logger.Discard())
	suite.Require().NoError(err)

	suite.store = session.NewRedisStore(suite.client, time.Minute)
}

func (suite *redisStoreSuite) TearDownSuite() {
	if suite.client != nil {
		suite.NoError(suite.client.Close())
	}
}

func (suite *redisStoreSuite) TestSaveLoadDelete() {
	ctx := suite.T().Context()
	m := session.NewManager(suite.store, nil, currency.USD, logger.Discard())

	s := m.New()
	suite.Require().NoError(s.Cart.Add(cart.Product{
		ID:    7,
		Title: "Running Shoes",
		Price: money.MustParse("99.99", currency.USD),
	}, 2))
	s.SignIn(session.Auth{Token: "csrf", LogoutToken: "logout", User: session.User{UID: "1", Name: "jane"}})

	suite.Require().NoError(suite.store.Save(ctx, s))

	loaded, err := suite.store.Load(ctx, s.ID)
	suite.Require().NoError(err)
	suite.Equal(s.Cart.Items(), loaded.Cart.Items())
	suite.Equal(s.Auth, loaded.Auth)

	ttl, err := suite.client.GetClient().TTL(ctx, "storefront:session:"+s.ID).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))

	suite.Require().NoError(suite.store.Delete(ctx, s.ID))
	_, err = suite.store.Load(ctx, s.ID)
	suite.ErrorIs(err, session.ErrNotFound)
}
