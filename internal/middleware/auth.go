package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexnetio/lexnet/internal/httputil"
)

// APIKeyAuth returns middleware that requires a static bearer token on every
// request. An empty key disables authentication entirely.
func APIKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()

			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			httputil.RespondError(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")

			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
			httputil.RespondError(c, http.StatusUnauthorized, "unauthorized", "invalid API key")

			return
		}

		c.Next()
	}
}
