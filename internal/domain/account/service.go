// internal/domain/account/service.go
package account

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/infrastructure/commerce"
	"golang.org/x/text/currency"
)

// Backend is the part of the commerce client that handles users and orders
type Backend interface {
	Login(ctx context.Context, name, pass string) (commerce.LoginResult, error)
	Logout(ctx context.Context, logoutToken string) error
	Register(ctx context.Context, name, mail, pass string) (commerce.RegisteredUser, error)
	Orders(ctx context.Context) ([]commerce.Record[commerce.OrderAttributes], error)
	Order(ctx context.Context, id string) (commerce.Record[commerce.OrderAttributes], error)
}

// Service handles sign-in, registration and order history
type Service struct {
	backend  Backend
	currency currency.Unit
	logger   logrus.FieldLogger
}

func NewService(backend Backend, cur currency.Unit, logger logrus.FieldLogger) *Service {
	return &Service{backend: backend, currency: cur, logger: logger}
}

// Login signs the session in with the backend's tokens
func (s *Service) Login(ctx context.Context, sess *session.Session, name, pass string) (*Profile, error) {
	result, err := s.backend.Login(ctx, name, pass)
	if err != nil {
		s.logger.WithError(err).Warn("Login error")
		if isRejected(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("backend.Login: %w", err)
	}

	user := session.User{
		UID:   result.CurrentUser.UID,
		Name:  result.CurrentUser.Name,
		Roles: result.CurrentUser.Roles,
	}
	sess.SignIn(session.Auth{
		Token:       result.CSRFToken,
		LogoutToken: result.LogoutToken,
		User:        user,
	})

	return toProfile(user), nil
}

// Logout signs the session out. Local state is cleared even when the backend call fails.
func (s *Service) Logout(ctx context.Context, sess *session.Session) error {
	if sess.Auth == nil {
		return nil
	}

	auth := *sess.Auth
	sess.SignOut()

	ctx = commerce.WithToken(ctx, auth.Token)
	if err := s.backend.Logout(ctx, auth.LogoutToken); err != nil {
		s.logger.WithError(err).Warn("Logout error")
		return fmt.Errorf("backend.Logout: %w", err)
	}
	return nil
}

// Register creates a customer account. It does not sign the session in.
func (s *Service) Register(ctx context.Context, name, mail, pass string) (*Profile, error) {
	user, err := s.backend.Register(ctx, name, mail, pass)
	if err != nil {
		s.logger.WithError(err).Warn("Registration error")
		return nil, fmt.Errorf("backend.Register: %w", err)
	}
	return &Profile{UID: user.UID, Name: user.Name, Mail: user.Mail}, nil
}

// CurrentUser returns the signed-in customer, or ErrLoginRequired
func (s *Service) CurrentUser(sess *session.Session) (*Profile, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	return toProfile(sess.Auth.User), nil
}

// Orders lists the customer's orders, newest first as the backend returns them
func (s *Service) Orders(ctx context.Context, sess *session.Session) ([]Order, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrLoginRequired
	}

	recs, err := s.backend.Orders(commerce.WithToken(ctx, sess.Token()))
	if err != nil {
		return nil, s.orderError(sess, "backend.Orders", err)
	}

	orders := make([]Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, toOrder(rec, s.currency))
	}
	return orders, nil
}

// Order returns one of the customer's orders
func (s *Service) Order(ctx context.Context, sess *session.Session, id string) (*Order, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrLoginRequired
	}

	rec, err := s.backend.Order(commerce.WithToken(ctx, sess.Token()), id)
	if errors.Is(err, commerce.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, s.orderError(sess, "backend.Order", err)
	}

	order := toOrder(rec, s.currency)
	return &order, nil
}

// orderError signs a session out whose token the backend no longer accepts
func (s *Service) orderError(sess *session.Session, op string, err error) error {
	s.logger.WithError(err).Error("Error fetching orders")
	if errors.Is(err, commerce.ErrUnauthorized) {
		sess.SignOut()
		return ErrLoginRequired
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isRejected(err error) bool {
	if errors.Is(err, commerce.ErrUnauthorized) {
		return true
	}
	var apiErr *commerce.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

func toProfile(u session.User) *Profile {
	return &Profile{UID: u.UID, Name: u.Name, Mail: u.Mail, Roles: u.Roles}
}
