// internal/interfaces/http/middleware/session.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/pkg/auth"
)

const (
	sessionKey      = "session"
	sessionStateKey = "session_state"
)

type sessionState struct {
	manager *session.Manager
	cfg     config.SessionConfig
}

// Session resolves the browser session from its cookie, or from a bearer token for API
// clients, and saves it once the handlers are done
func Session(manager *session.Manager, cfg config.SessionConfig, logger logrus.FieldLogger) gin.HandlerFunc {
	state := &sessionState{manager: manager, cfg: cfg}

	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			token = auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		}

		sess, fresh, err := manager.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.WithError(err).Error("Failed to load session")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Session store unavailable",
			})
			return
		}

		if fresh {
			token, err = manager.Issue(sess)
			if err != nil {
				logger.WithError(err).Error("Failed to issue session token")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Failed to create session",
				})
				return
			}
			setSessionCookie(c, cfg, token)
		}

		c.Set(sessionKey, sess)
		c.Set(sessionStateKey, state)

		// saved before the first byte goes out, so the next request sees this one's changes
		w := &sessionWriter{ResponseWriter: c.Writer}
		w.save = func() {
			// the request context may already be cancelled by the timeout middleware
			ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 3*time.Second)
			defer cancel()

			if err := manager.Save(ctx, sess); err != nil {
				logger.WithError(err).WithField("session_id", sess.ID).Error("Failed to save session")
			}
		}
		c.Writer = w

		c.Next()
		w.once.Do(w.save)
	}
}

type sessionWriter struct {
	gin.ResponseWriter
	once sync.Once
	save func()
}

func (w *sessionWriter) WriteHeaderNow() {
	w.once.Do(w.save)
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(data []byte) (int, error) {
	w.once.Do(w.save)
	return w.ResponseWriter.Write(data)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.once.Do(w.save)
	return w.ResponseWriter.WriteString(s)
}

// RotateSession moves the request's session to a new id and cookie. Call it when the
// session signs in.
func RotateSession(c *gin.Context) error {
	v, ok := c.Get(sessionStateKey)
	if !ok {
		return errors.New("session middleware is not installed")
	}
	state := v.(*sessionState)

	token, err := state.manager.Rotate(c.Request.Context(), GetSession(c))
	if err != nil {
		return err
	}
	setSessionCookie(c, state.cfg, token)
	return nil
}

func setSessionCookie(c *gin.Context, cfg config.SessionConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, int(cfg.TTL/time.Second), "/", "", cfg.Secure, true)
}

// GetSession returns the session resolved for this request
func GetSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
