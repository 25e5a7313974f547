// internal/infrastructure/commerce/errors.go
package commerce

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("commerce backend rejected the credentials")
	ErrNotFound     = errors.New("commerce resource not found")
)

// APIError is a non-2xx response from the backend
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Is lets callers match ErrUnauthorized and ErrNotFound with errors.Is
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
