// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIBasePath prefixes every storefront API route
const APIBasePath = "/api/v1"

// RequireLogin rejects guests with the login redirect the storefront follows
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.IsAuthenticated() {
			AbortLoginRequired(c)
			return
		}

		c.Next()
	}
}

// AbortLoginRequired answers 401 with where to send the shopper and the storefront page
// they came from, e.g. /orders for /api/v1/orders
func AbortLoginRequired(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Authentication required",
		"redirect": "/login",
		"from":     storefrontPath(c.Request.URL.Path),
	})
}

func storefrontPath(path string) string {
	rest, ok := strings.CutPrefix(path, APIBasePath)
	switch {
	case !ok:
		return path
	case rest == "":
		return "/"
	case !strings.HasPrefix(rest, "/"):
		return path
	}
	return rest
}
