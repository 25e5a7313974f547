// internal/domain/session/entity.go
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
)

// User is the signed-in customer as the backend reported it at login
type User struct {
	UID   string   `json:"uid"`
	Name  string   `json:"name"`
	Mail  string   `json:"mail,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Auth holds the tokens of a signed-in session
type Auth struct {
	Token       string `json:"auth_token"`
	LogoutToken string `json:"logout_token"`
	User        User   `json:"user"`
}

// Session is the server-side state of one browser
type Session struct {
	ID        string
	Cart      *cart.Store
	Auth      *Auth
	PromoCode string
	Checkout  *checkout.Draft
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAuthenticated reports whether a customer is signed in
func (s *Session) IsAuthenticated() bool {
	return s.Auth != nil && s.Auth.Token != ""
}

// Token returns the backend token, empty for guests
func (s *Session) Token() string {
	if s.Auth == nil {
		return ""
	}
	return s.Auth.Token
}

// SignIn stores the tokens of a successful login
func (s *Session) SignIn(auth Auth) {
	s.Auth = &auth
}

// SignOut forgets every token and the user
func (s *Session) SignOut() {
	s.Auth = nil
}

type snapshot struct {
	ID        string          `json:"id"`
	Cart      cart.Snapshot   `json:"cart"`
	Auth      *Auth           `json:"auth,omitempty"`
	PromoCode string          `json:"promo_code,omitempty"`
	Checkout  *checkout.Draft `json:"checkout,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot{
		ID:        s.ID,
		Cart:      s.Cart.Snapshot(),
		Auth:      s.Auth,
		PromoCode: s.PromoCode,
		Checkout:  s.Checkout,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	store, err := cart.Restore(snap.Cart)
	if err != nil {
		return fmt.Errorf("session[%s] cart: %w", snap.ID, err)
	}

	draft := snap.Checkout
	if draft == nil {
		draft = checkout.NewDraft()
	}

	*s = Session{
		ID:        snap.ID,
		Cart:      store,
		Auth:      snap.Auth,
		PromoCode: snap.PromoCode,
		Checkout:  draft,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
	return nil
}
