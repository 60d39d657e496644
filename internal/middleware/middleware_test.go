package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"preinscription-chatbot/pkg/log"
)

func newTestRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{RequestsPerMin: 60, Burst: 2})
	r := newTestRouter(mw, mw.RateLimit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected the burst to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after the burst, got %d", codes[2])
	}

	// Another client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newTestRouter(mw, mw.RequestID(), mw.RequestLogger())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" {
			t.Fatal("expected a generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context request id %q != header %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
			t.Errorf("expected propagated id, got %q", got)
		}
	})
}

func TestSecurityHeaders(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newTestRouter(mw, mw.SecurityHeaders())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if got := w.Header().Get("Content-Security-Policy"); got != contentSecurityPolicy {
		t.Errorf("unexpected CSP: %q", got)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing nosniff header")
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	if id := log.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
