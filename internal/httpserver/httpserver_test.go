package httpserver

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	chatSqlite "preinscription-chatbot/internal/chat/repository/sqlite"
	"preinscription-chatbot/internal/conversation"
	"preinscription-chatbot/internal/test"
	"preinscription-chatbot/pkg/log"
	pkgSqlite "preinscription-chatbot/pkg/sqlite"
)

func newTestServer(t *testing.T, environment string) *HTTPServer {
	srv, _ := newTestServerWithDB(t, environment)
	return srv
}

func newTestServerWithDB(t *testing.T, environment string) (*HTTPServer, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := pkgSqlite.Open(ctx, pkgSqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := chatSqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	l := log.NewNop()
	store, err := conversation.NewStore(conversation.StoreConfig{}, l)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	engine := conversation.NewEngine(store, nil, conversation.EngineConfig{}, l)

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: environment,
		DB:          db,
		Engine:      engine,
		TestHandler: test.New(l, engine),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, db
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, "development")

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: expected a request id header", path)
		}
		if w.Header().Get("Content-Security-Policy") == "" {
			t.Errorf("%s: expected security headers", path)
		}
	}
}

func TestReadyCheck_DatabaseDown(t *testing.T) {
	srv, db := newTestServerWithDB(t, "development")
	db.Close()

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestTestRoutes_HiddenInProduction(t *testing.T) {
	dev := newTestServer(t, "development")
	w := serve(dev, httptest.NewRequest(http.MethodGet, "/test/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("development: expected 200, got %d", w.Code)
	}

	prod := newTestServer(t, "production")
	w = serve(prod, httptest.NewRequest(http.MethodGet, "/test/health", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("production: expected 404, got %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, "development")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.org")
	w := serve(srv, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: "test", Port: 8080}); err == nil {
		t.Fatal("expected error without database and engine")
	}
}
