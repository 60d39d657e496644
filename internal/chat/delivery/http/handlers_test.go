package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatSqlite "preinscription-chatbot/internal/chat/repository/sqlite"
	"preinscription-chatbot/internal/chat/usecase"
	"preinscription-chatbot/internal/conversation"
	"preinscription-chatbot/internal/middleware"
	pkgLog "preinscription-chatbot/pkg/log"
	pkgSqlite "preinscription-chatbot/pkg/sqlite"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, gen conversation.Generator) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	db, err := pkgSqlite.Open(ctx, pkgSqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, chatSqlite.Migrate(ctx, db))

	l := pkgLog.NewNop()
	store, err := conversation.NewStore(conversation.StoreConfig{}, l)
	require.NoError(t, err)
	engine := conversation.NewEngine(store, gen, conversation.EngineConfig{}, l)
	uc := usecase.New(chatSqlite.New(db, l), engine, 100, l)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(l, middleware.Config{RequestsPerMin: 6000, Burst: 100})
	RegisterRoutes(r.Group("/api/v1/chat"), New(l, uc), mw)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

var failingGenerator = conversation.GeneratorFunc(func(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
})

func TestSendMessage_Fallback(t *testing.T) {
	r := newTestRouter(t, failingGenerator)

	code, env := do(t, r, http.MethodPost, "/api/v1/chat/messages", gin.H{
		"message":      "Je veux m'inscrire",
		"display_name": "Awa",
	})
	require.Equal(t, http.StatusOK, code)

	var resp struct {
		Response  string `json:"response"`
		SessionID string `json:"session_id"`
		Intent    string `json:"intent"`
		Fallback  bool   `json:"fallback"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, conversation.Fallback(conversation.IntentPreinscription), resp.Response)
	assert.Equal(t, "preinscription", resp.Intent)
	assert.True(t, resp.Fallback)
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestSendMessage_Validation(t *testing.T) {
	r := newTestRouter(t, failingGenerator)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"empty message", gin.H{"message": "   "}, http.StatusBadRequest},
		{"too long", gin.H{"message": strings.Repeat("a", 101)}, http.StatusRequestEntityTooLarge},
		{"bad session id", gin.H{"message": "bonjour", "session_id": "a\nb"}, http.StatusBadRequest},
		{"not json", "plain", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, http.MethodPost, "/api/v1/chat/messages", tt.body)
			assert.Equal(t, tt.want, code)
			assert.NotZero(t, env.ErrorCode)
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	gen := conversation.GeneratorFunc(func(context.Context, string) (string, error) {
		return "Bienvenue !", nil
	})
	r := newTestRouter(t, gen)

	code, env := do(t, r, http.MethodPost, "/api/v1/chat/sessions", nil)
	require.Equal(t, http.StatusOK, code)
	var sess struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.NotEmpty(t, sess.SessionID)
	base := "/api/v1/chat/sessions/" + sess.SessionID

	code, _ = do(t, r, http.MethodPost, "/api/v1/chat/messages", gin.H{
		"message":    "Bonjour",
		"session_id": sess.SessionID,
	})
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodGet, base+"/messages", nil)
	require.Equal(t, http.StatusOK, code)
	var hist struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &hist))
	require.Len(t, hist.Messages, 2)
	assert.Equal(t, "user", hist.Messages[0].Role)
	assert.Equal(t, "Bonjour", hist.Messages[0].Content)
	assert.Equal(t, "assistant", hist.Messages[1].Role)
	assert.Equal(t, "Bienvenue !", hist.Messages[1].Content)

	code, env = do(t, r, http.MethodPut, base+"/attributes", gin.H{
		"attributes": gin.H{"programme": "informatique"},
	})
	require.Equal(t, http.StatusOK, code)
	var sum struct {
		MessageCount   int            `json:"message_count"`
		StoredMessages int            `json:"stored_messages"`
		LastIntent     string         `json:"last_intent"`
		Attributes     map[string]any `json:"user_attributes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	assert.Equal(t, 2, sum.MessageCount)
	assert.Equal(t, 2, sum.StoredMessages)
	assert.Equal(t, "salutation", sum.LastIntent)
	assert.Equal(t, "informatique", sum.Attributes["programme"])

	code, _ = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, r, http.MethodGet, base+"/summary", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUnknownSession(t *testing.T) {
	r := newTestRouter(t, failingGenerator)

	code, _ := do(t, r, http.MethodGet, "/api/v1/chat/sessions/missing/messages", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, r, http.MethodDelete, "/api/v1/chat/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, r, http.MethodPut, "/api/v1/chat/sessions/missing/attributes", gin.H{"attributes": gin.H{}})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListSessions(t *testing.T) {
	r := newTestRouter(t, failingGenerator)

	code, _ := do(t, r, http.MethodPost, "/api/v1/chat/sessions", gin.H{"user_id": "u1"})
	require.Equal(t, http.StatusOK, code)
	code, env := do(t, r, http.MethodPost, "/api/v1/chat/messages", gin.H{"message": "Bonjour", "user_id": "u1"})
	require.Equal(t, http.StatusOK, code)
	var sent struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sent))
	code, _ = do(t, r, http.MethodPost, "/api/v1/chat/messages", gin.H{"message": "Bonjour", "user_id": "u2"})
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodGet, "/api/v1/chat/sessions?user_id=u1", nil)
	require.Equal(t, http.StatusOK, code)

	var list struct {
		Sessions []struct {
			SessionID    string `json:"session_id"`
			UserID       string `json:"user_id"`
			MessageCount int    `json:"message_count"`
		} `json:"sessions"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Equal(t, 2, list.Count)
	require.Len(t, list.Sessions, 2)

	counts := map[string]int{}
	for _, s := range list.Sessions {
		assert.Equal(t, "u1", s.UserID)
		counts[s.SessionID] = s.MessageCount
	}
	assert.Equal(t, 2, counts[sent.SessionID])

	code, _ = do(t, r, http.MethodGet, "/api/v1/chat/sessions", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, r, http.MethodGet, "/api/v1/chat/sessions?user_id=u1&limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
