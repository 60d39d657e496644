package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"preinscription-chatbot/internal/conversation"
	pkgLog "preinscription-chatbot/pkg/log"
)

func setup(t *testing.T) (*gin.Engine, *conversation.Engine) {
	t.Helper()
	store, err := conversation.NewStore(conversation.StoreConfig{}, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	engine := conversation.NewEngine(store, nil, conversation.EngineConfig{}, pkgLog.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(pkgLog.NewNop(), engine)
	r.POST("/test/message", h.HandleTestMessage)
	r.POST("/test/reset", h.HandleResetSession)
	r.GET("/test/health", h.HandleHealthCheck)
	r.GET("/test/fallback/:intent", h.HandleFallback)
	return r, engine
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleTestMessage(t *testing.T) {
	r, engine := setup(t)

	w := post(r, "/test/message", TestMessageRequest{Text: "Quels sont les frais ?", SessionID: "s1", DisplayName: "Awa"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp TestMessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Intent != string(conversation.IntentFrais) {
		t.Errorf("expected frais, got %s", resp.Intent)
	}
	if resp.Fallback != conversation.Fallback(conversation.IntentFrais) {
		t.Errorf("unexpected fallback: %s", resp.Fallback)
	}
	if !strings.Contains(resp.Prompt, "[User is named Awa]") || !strings.Contains(resp.Prompt, "User: Quels sont les frais ?") {
		t.Errorf("unexpected prompt: %s", resp.Prompt)
	}
	if engine.Store().Len() != 0 {
		t.Errorf("diagnostics must not create sessions, got %d", engine.Store().Len())
	}
}

func TestHandleTestMessage_MissingText(t *testing.T) {
	r, _ := setup(t)

	w := post(r, "/test/message", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleResetSession(t *testing.T) {
	r, engine := setup(t)
	engine.Store().AppendMessage("s1", conversation.RoleUser, "Bonjour")

	w := post(r, "/test/reset", ResetSessionRequest{SessionID: "s1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, ok := engine.Store().Peek("s1"); ok {
		t.Error("session should be cleared")
	}
}

func TestHandleFallback(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		label     string
		wantKnown bool
		want      conversation.Intent
	}{
		{"contact", true, conversation.IntentContact},
		{"FRAIS", true, conversation.IntentFrais},
		{"weather", false, conversation.IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/fallback/"+tt.label, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var resp FallbackResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Known != tt.wantKnown || resp.Intent != string(tt.want) {
				t.Errorf("got intent=%s known=%v", resp.Intent, resp.Known)
			}
			if resp.Fallback != conversation.Fallback(tt.want) {
				t.Errorf("unexpected fallback %q", resp.Fallback)
			}
		})
	}
}
