// internal/domain/cart/store.go
package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/your-org/storefront/internal/domain/money"
	"golang.org/x/text/currency"
)

// MaxLineQuantity bounds the quantity of one line so that line and cart totals stay
// well inside int64 minor units
const MaxLineQuantity = 10000

var (
	ErrCurrencyMismatch = errors.New("product price currency does not match cart currency")
	ErrQuantityLimit    = errors.New("line quantity exceeds the cart limit")
)

// Store holds the line items of one shopper's cart.
//
// A line is identified by product id alone: adding the same product with another
// variant increases the quantity of the existing line and keeps its original variant.
type Store struct {
	mu       sync.RWMutex
	currency currency.Unit
	items    []LineItem
}

// NewStore creates an empty cart priced in cur
func NewStore(cur currency.Unit) *Store {
	return &Store{currency: cur}
}

// Currency returns the currency every line is priced in
func (s *Store) Currency() currency.Unit {
	return s.currency
}

// AddOne adds a single unit of p
func (s *Store) AddOne(p Product) error {
	return s.Add(p, 1)
}

// Add merges quantity units of p into the cart. A quantity below one adds nothing.
func (s *Store) Add(p Product, quantity int) error {
	if p.Price.Currency != s.currency {
		return fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, p.Price.Currency, s.currency)
	}
	if quantity < 1 {
		return nil
	}
	if quantity > MaxLineQuantity {
		return fmt.Errorf("%w: %d > %d", ErrQuantityLimit, quantity, MaxLineQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		if total := s.items[i].Quantity + quantity; total > MaxLineQuantity {
			return fmt.Errorf("%w: %d > %d", ErrQuantityLimit, total, MaxLineQuantity)
		}
		s.items[i].Quantity += quantity
		return nil
	}

	s.items = append(s.items, LineItem{
		ID:        p.ID,
		Title:     p.Title,
		UnitPrice: p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		Variant:   p.Variant,
	})
	return nil
}

// Remove deletes the line for id, if any
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(id)
}

// UpdateQuantity sets the quantity of the line for id. A quantity of zero or less removes
// the line; one above MaxLineQuantity leaves it unchanged and fails.
func (s *Store) UpdateQuantity(id int64, quantity int) error {
	if quantity > MaxLineQuantity {
		return fmt.Errorf("%w: %d > %d", ErrQuantityLimit, quantity, MaxLineQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(id)
		return nil
	}

	if i := s.indexOf(id); i >= 0 {
		s.items[i].Quantity = quantity
	}
	return nil
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// Items returns a copy of the line items in insertion order
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Item returns the line for id
func (s *Store) Item(id int64) (LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return LineItem{}, false
}

// Len returns the number of distinct lines
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Quantity returns the sum of all line quantities
func (s *Store) Quantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Total returns the sum of unit price times quantity over all lines
func (s *Store) Total() money.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := money.Zero(s.currency)
	for _, item := range s.items {
		total = total.Add(item.Total())
	}
	return total
}

// Snapshot returns the serializable state of the cart
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Currency: s.currency.String(),
		Items:    s.Items(),
	}
}

// Restore rebuilds a cart from a snapshot, dropping lines that break the cart invariants
func Restore(snap Snapshot) (*Store, error) {
	cur, err := currency.ParseISO(snap.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", snap.Currency, err)
	}

	s := NewStore(cur)
	for _, item := range snap.Items {
		if item.Quantity < 1 || item.Quantity > MaxLineQuantity {
			continue
		}
		p := Product{
			ID:      item.ID,
			Title:   item.Title,
			Price:   item.UnitPrice,
			Image:   item.Image,
			Variant: item.Variant,
		}
		if err := s.Add(p, item.Quantity); err != nil && !errors.Is(err, ErrQuantityLimit) {
			return nil, fmt.Errorf("s.Add: %w", err)
		}
	}

	return s, nil
}

func (s *Store) indexOf(id int64) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) remove(id int64) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}
