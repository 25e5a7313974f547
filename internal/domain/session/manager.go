// internal/domain/session/manager.go
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"golang.org/x/text/currency"
)

// TokenSigner signs session ids into cookie values
type TokenSigner interface {
	GenerateSessionToken(sessionID string) (string, error)
	ValidateSessionToken(token string) (string, error)
}

// Manager creates, resolves and persists sessions
type Manager struct {
	store    Store
	signer   TokenSigner
	currency currency.Unit
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewManager(store Store, signer TokenSigner, cur currency.Unit, logger logrus.FieldLogger) *Manager {
	return &Manager{
		store:    store,
		signer:   signer,
		currency: cur,
		logger:   logger,
		now:      time.Now,
	}
}

// New returns an empty, unsaved session
func (m *Manager) New() *Session {
	now := m.now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Cart:      cart.NewStore(m.currency),
		Checkout:  checkout.NewDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Issue signs the session id for the cookie
func (m *Manager) Issue(s *Session) (string, error) {
	token, err := m.signer.GenerateSessionToken(s.ID)
	if err != nil {
		return "", fmt.Errorf("signer.GenerateSessionToken: %w", err)
	}
	return token, nil
}

// Resolve loads the session named by token. A missing, invalid or expired token
// yields a fresh session and fresh reports true.
func (m *Manager) Resolve(ctx context.Context, token string) (s *Session, fresh bool, err error) {
	if token == "" {
		return m.New(), true, nil
	}

	id, err := m.signer.ValidateSessionToken(token)
	if err != nil {
		m.logger.WithError(err).Debug("Discarding invalid session token")
		return m.New(), true, nil
	}

	s, err = m.store.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return m.New(), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store.Load: %w", err)
	}

	if s.Cart.Currency() != m.currency {
		m.logger.WithField("session_id", id).Warn("Session cart currency differs from the store currency, starting a new cart")
		s.Cart = cart.NewStore(m.currency)
		s.PromoCode = ""
	}

	return s, false, nil
}

// Save persists the session
func (m *Manager) Save(ctx context.Context, s *Session) error {
	s.UpdatedAt = m.now().UTC()
	if err := m.store.Save(ctx, s); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	return nil
}

// Rotate moves the session to a new id and returns the token for it. The old id stops
// resolving once the session is saved under the new one.
func (m *Manager) Rotate(ctx context.Context, s *Session) (string, error) {
	oldID := s.ID
	s.ID = uuid.NewString()

	token, err := m.Issue(s)
	if err != nil {
		s.ID = oldID
		return "", err
	}

	if err := m.store.Delete(ctx, oldID); err != nil {
		// the old entry expires on its own
		m.logger.WithError(err).WithField("session_id", oldID).Warn("Failed to delete rotated session")
	}
	return token, nil
}
