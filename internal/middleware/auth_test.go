package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lexnetio/lexnet/internal/middleware"
)

func serveWithAuth(t *testing.T, key, header string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.Use(middleware.APIKeyAuth(key))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)

	return w
}

func TestAPIKeyAuth_DisabledWhenEmpty(t *testing.T) {
	w := serveWithAuth(t, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", w.Code)
	}
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	w := serveWithAuth(t, "secret-key", "Bearer secret-key")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid key, got %d", w.Code)
	}
}

func TestAPIKeyAuth_MissingHeader(t *testing.T) {
	w := serveWithAuth(t, "secret-key", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}
}

func TestAPIKeyAuth_WrongKey(t *testing.T) {
	w := serveWithAuth(t, "secret-key", "Bearer wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong key, got %d", w.Code)
	}
}

func TestAPIKeyAuth_NonBearerScheme(t *testing.T) {
	w := serveWithAuth(t, "secret-key", "Basic secret-key")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", w.Code)
	}
}
