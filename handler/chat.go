package handler

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"monastery-guide/internal/domain"
	"monastery-guide/internal/usecase"
)

type startSessionResponse struct {
	SessionID string `json:"sessionId"`
	Greeting  string `json:"greeting"`
}

type historyResponse struct {
	SessionID string        `json:"sessionId"`
	Turns     []domain.Turn `json:"turns"`
}

type submitRequest struct {
	Message string `json:"message"`
}

type bubble struct {
	Role    domain.Role `json:"role"`
	Content string      `json:"content"`
	HTML    string      `json:"html"`
}

type submitResponse struct {
	SessionID string           `json:"sessionId"`
	State     domain.TurnState `json:"state"`
	Bubbles   []bubble         `json:"bubbles"`
}

// bubbleRecorder is the ChatView for one HTTP request. The bubbles it
// collects become the response body.
type bubbleRecorder struct {
	mu      sync.Mutex
	bubbles []bubble
}

func (b *bubbleRecorder) AppendBubble(turn domain.Turn, html string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bubbles = append(b.bubbles, bubble{Role: turn.Role, Content: turn.Content, HTML: html})
}

// The response is only written once the turn settles, so there is no
// typing placeholder to show.
func (b *bubbleRecorder) ShowTyping() {}

func (b *bubbleRecorder) HideTyping() {}

func (b *bubbleRecorder) snapshot() []bubble {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]bubble, len(b.bubbles))
	copy(out, b.bubbles)
	return out
}

func (h *Handler) handleStartSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusCreated, startSessionResponse{
		SessionID: h.chat.StartSession(),
		Greeting:  usecase.Greeting,
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sid := mux.Vars(r)["sid"]
	turns, err := h.chat.History(sid)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{SessionID: sid, Turns: turns})
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	h.chat.EndSession(mux.Vars(r)["sid"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sid := mux.Vars(r)["sid"]
	var req submitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, usecase.ErrorInvalidInput)
		return
	}

	view := &bubbleRecorder{}
	state, err := h.chat.Submit(r.Context(), view, sid, req.Message)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	if state == domain.TurnDiscarded {
		h.logger.Info("client left before reply",
			zap.String("correlation_id", correlationID(r.Context())),
			zap.String("session_id", sid),
		)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{SessionID: sid, State: state, Bubbles: view.snapshot()})
}
