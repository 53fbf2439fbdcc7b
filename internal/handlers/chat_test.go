package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/obras-paraguay/natacion-api/internal/assistant"
)

func TestHandleChatFallbackWithoutBridge(t *testing.T) {
	handler := NewChatHandler(nil, nil)

	r := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"Hola"}`))
	w := httptest.NewRecorder()
	handler.HandleChat(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("expected SSE content type, got %q", got)
	}
	body := w.Body.String()
	if !strings.Contains(body, assistant.FallbackMessage) {
		t.Error("expected canned fallback message in stream")
	}
	if !strings.Contains(body, "data: [DONE]") {
		t.Error("expected stream terminator")
	}
}

func TestHandleChatRejectsEmptyMessage(t *testing.T) {
	handler := NewChatHandler(nil, nil)

	r := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":""}`))
	w := httptest.NewRecorder()
	handler.HandleChat(w, r)

	if w.Code != 400 {
		t.Errorf("expected 400 for empty message, got %d", w.Code)
	}
}
