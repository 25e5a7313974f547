package cart_test

import (
	"math"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/money"
	"golang.org/x/text/currency"
)

func TestStore_Add(t *testing.T) {
	tshirt := cart.Product{ID: 1, Title: "Men's Casual T-Shirt", Price: usd("29.99"), Image: "tshirt.jpg"}

	tests := []struct {
		name         string
		adds         []int
		wantQuantity int
		wantTotal    string
	}{
		{
			name:         "single add: ok",
			adds:         []int{1},
			wantQuantity: 1,
			wantTotal:    "29.99",
		},
		{
			name:         "same id merges: ok",
			adds:         []int{1, 2},
			wantQuantity: 3,
			wantTotal:    "89.97",
		},
		{
			name:         "non positive quantity adds nothing: ok",
			adds:         []int{2, 0, -4},
			wantQuantity: 2,
			wantTotal:    "59.98",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cart.NewStore(currency.USD)

			for _, q := range tt.adds {
				require.NoError(t, store.Add(tshirt, q))
			}

			require.Equal(t, 1, store.Len())
			item, ok := store.Item(tshirt.ID)
			require.True(t, ok)
			assert.Equal(t, tt.wantQuantity, item.Quantity)
			assert.Equal(t, tt.wantQuantity, store.Quantity())
			assert.Equal(t, tt.wantTotal, store.Total().String())
		})
	}
}

func TestStore_AddSumsQuantities(t *testing.T) {
	store := cart.NewStore(currency.USD)
	p := randomProduct()

	want := 0
	for range gofakeit.IntRange(1, 20) {
		q := gofakeit.IntRange(1, 5)
		want += q
		require.NoError(t, store.Add(p, q))
	}
	require.NoError(t, store.AddOne(p))
	want++

	assert.Equal(t, want, store.Quantity())
	assert.Equal(t, p.Price.Mul(want), store.Total())
}

func TestStore_AddNonPositiveOnEmptyCart(t *testing.T) {
	store := cart.NewStore(currency.USD)

	require.NoError(t, store.Add(randomProduct(), 0))
	require.NoError(t, store.Add(randomProduct(), -gofakeit.IntRange(1, 10)))

	assert.Zero(t, store.Len())
	assert.True(t, store.Total().IsZero())
}

func TestStore_QuantityLimit(t *testing.T) {
	p := cart.Product{ID: 1, Title: "Men's Casual T-Shirt", Price: usd("29.99")}

	tests := []struct {
		name         string
		add          int
		update       int
		wantError    error
		wantQuantity int
	}{
		{
			name:         "update to the limit: ok",
			add:          1,
			update:       cart.MaxLineQuantity,
			wantQuantity: cart.MaxLineQuantity,
		},
		{
			name:         "update past the limit: error",
			add:          1,
			update:       4_000_000_000_000_000,
			wantError:    cart.ErrQuantityLimit,
			wantQuantity: 1,
		},
		{
			name:         "update to max int: error",
			add:          3,
			update:       math.MaxInt,
			wantError:    cart.ErrQuantityLimit,
			wantQuantity: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cart.NewStore(currency.USD)
			require.NoError(t, store.Add(p, tt.add))

			err := store.UpdateQuantity(p.ID, tt.update)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantQuantity, store.Quantity())
			assert.Equal(t, p.Price.Mul(tt.wantQuantity), store.Total())
			assert.False(t, store.Total().Decimal().IsNegative())
		})
	}

	t.Run("add past the limit: error", func(t *testing.T) {
		store := cart.NewStore(currency.USD)
		require.NoError(t, store.Add(p, cart.MaxLineQuantity-1))

		require.ErrorIs(t, store.Add(p, 2), cart.ErrQuantityLimit)
		require.ErrorIs(t, store.Add(p, math.MaxInt), cart.ErrQuantityLimit)
		assert.Equal(t, cart.MaxLineQuantity-1, store.Quantity())

		require.NoError(t, store.AddOne(p))
		assert.Equal(t, cart.MaxLineQuantity, store.Quantity())
	})
}

func TestStore_AddKeepsFirstVariant(t *testing.T) {
	store := cart.NewStore(currency.USD)

	require.NoError(t, store.Add(cart.Product{ID: 7, Title: "Running Shoes", Price: usd("99.99"), Variant: "L, Black"}, 1))
	require.NoError(t, store.Add(cart.Product{ID: 7, Title: "Running Shoes", Price: usd("99.99"), Variant: "M, White"}, 1))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "L, Black", items[0].Variant)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestStore_AddCurrencyMismatch(t *testing.T) {
	store := cart.NewStore(currency.USD)

	err := store.Add(cart.Product{ID: 1, Price: money.MustParse("1.00", currency.EUR)}, 1)
	require.ErrorIs(t, err, cart.ErrCurrencyMismatch)
	assert.Zero(t, store.Len())
}

func TestStore_Remove(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		wantIDs []int64
	}{
		{
			name:    "remove existing line: ok",
			id:      2,
			wantIDs: []int64{1, 3},
		},
		{
			name:    "remove absent line: no-op",
			id:      42,
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(t)
			before := store.Total()

			store.Remove(tt.id)

			assert.Equal(t, tt.wantIDs, ids(store))
			if tt.id == 42 {
				assert.Equal(t, before, store.Total())
			}
		})
	}
}

func TestStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		id           int64
		quantity     int
		wantIDs      []int64
		wantQuantity int
	}{
		{
			name:         "set quantity: ok",
			id:           1,
			quantity:     5,
			wantIDs:      []int64{1, 2, 3},
			wantQuantity: 5 + 2 + 3,
		},
		{
			name:         "no maximum clamp: ok",
			id:           1,
			quantity:     1000,
			wantIDs:      []int64{1, 2, 3},
			wantQuantity: 1000 + 2 + 3,
		},
		{
			name:         "zero removes the line: ok",
			id:           2,
			quantity:     0,
			wantIDs:      []int64{1, 3},
			wantQuantity: 1 + 3,
		},
		{
			name:         "negative removes the line: ok",
			id:           3,
			quantity:     -gofakeit.IntRange(1, 100),
			wantIDs:      []int64{1, 2},
			wantQuantity: 1 + 2,
		},
		{
			name:         "absent id: no-op",
			id:           42,
			quantity:     9,
			wantIDs:      []int64{1, 2, 3},
			wantQuantity: 1 + 2 + 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(t)

			require.NoError(t, store.UpdateQuantity(tt.id, tt.quantity))

			assert.Equal(t, tt.wantIDs, ids(store))
			assert.Equal(t, tt.wantQuantity, store.Quantity())
		})
	}
}

func TestStore_UpdateQuantityNonPositiveEqualsRemove(t *testing.T) {
	for _, q := range []int{0, -1, -gofakeit.IntRange(2, 1000)} {
		updated := seededStore(t)
		removed := seededStore(t)

		require.NoError(t, updated.UpdateQuantity(2, q))
		removed.Remove(2)

		assert.Empty(t, cmp.Diff(removed.Snapshot(), updated.Snapshot(), currencyComparer))
	}
}

func TestStore_TotalIsRecomputedAfterEveryMutation(t *testing.T) {
	store := cart.NewStore(currency.USD)

	for range 50 {
		p := randomProduct()
		switch gofakeit.IntRange(0, 3) {
		case 0, 1:
			require.NoError(t, store.Add(p, gofakeit.IntRange(1, 4)))
		case 2:
			if items := store.Items(); len(items) > 0 {
				require.NoError(t, store.UpdateQuantity(items[0].ID, gofakeit.IntRange(-1, 6)))
			}
		case 3:
			if items := store.Items(); len(items) > 0 {
				store.Remove(items[len(items)-1].ID)
			}
		}

		want := money.Zero(currency.USD)
		quantity := 0
		for _, item := range store.Items() {
			require.GreaterOrEqual(t, item.Quantity, 1)
			want = want.Add(item.UnitPrice.Mul(item.Quantity))
			quantity += item.Quantity
		}
		assert.Equal(t, want, store.Total())
		assert.Equal(t, quantity, store.Quantity())
	}
}

func TestStore_Clear(t *testing.T) {
	store := seededStore(t)

	store.Clear()

	assert.Zero(t, store.Len())
	assert.Zero(t, store.Quantity())
	assert.True(t, store.Total().IsZero())
}

func TestRestore(t *testing.T) {
	store := seededStore(t)

	restored, err := cart.Restore(store.Snapshot())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(store.Snapshot(), restored.Snapshot(), currencyComparer))

	snap := cart.Snapshot{
		Currency: "USD",
		Items: []cart.LineItem{
			{ID: 1, UnitPrice: usd("1.00"), Quantity: 2},
			{ID: 1, UnitPrice: usd("1.00"), Quantity: 3},
			{ID: 2, UnitPrice: usd("5.00"), Quantity: 0},
			{ID: 3, UnitPrice: usd("5.00"), Quantity: cart.MaxLineQuantity + 1},
		},
	}
	restored, err = cart.Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(restored))
	assert.Equal(t, 5, restored.Quantity())

	_, err = cart.Restore(cart.Snapshot{Currency: "nope"})
	require.ErrorContains(t, err, "currency[nope] is not valid")
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := cart.NewStore(currency.USD)
	p := randomProduct()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.AddOne(p)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, store.Quantity())
}

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func seededStore(t *testing.T) *cart.Store {
	t.Helper()

	store := cart.NewStore(currency.USD)
	require.NoError(t, store.Add(cart.Product{ID: 1, Title: "Men's Casual T-Shirt", Price: usd("29.99")}, 1))
	require.NoError(t, store.Add(cart.Product{ID: 2, Title: "Women's Summer Dress", Price: usd("49.99")}, 2))
	require.NoError(t, store.Add(cart.Product{ID: 3, Title: "Casual Sneakers", Price: usd("79.99")}, 3))
	return store
}

func ids(store *cart.Store) []int64 {
	var result []int64
	for _, item := range store.Items() {
		result = append(result, item.ID)
	}
	return result
}

func randomProduct() cart.Product {
	return cart.Product{
		ID:    int64(gofakeit.IntRange(1, 1_000_000)),
		Title: gofakeit.ProductName(),
		Price: money.FromDecimal(decimalPrice(), currency.USD),
		Image: gofakeit.URL(),
	}
}

func decimalPrice() decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(1, 100))
}

func usd(s string) money.Money {
	return money.MustParse(s, currency.USD)
}
