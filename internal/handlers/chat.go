package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/obras-paraguay/natacion-api/internal/assistant"
	"go.uber.org/zap"
)

// ChatHandler streams assistant replies over SSE. The bridge may be nil when
// no API key is configured; every failure path degrades to the canned
// apology so the widget never breaks.
type ChatHandler struct {
	bridge *assistant.Bridge
	logger *zap.Logger
}

func NewChatHandler(bridge *assistant.Bridge, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{bridge: bridge, logger: logger}
}

type chatRequest struct {
	History []assistant.Message `json:"history"`
	Message string              `json:"message"`
}

func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	emit := func(chunk string) error {
		payload, err := json.Marshal(map[string]string{"text": chunk})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	if h.bridge == nil {
		emit(assistant.FallbackMessage)
	} else if err := h.bridge.StreamReply(r.Context(), req.History, req.Message, emit); err != nil {
		h.logger.Warn("assistant stream failed", zap.Error(err))
		emit(assistant.FallbackMessage)
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
