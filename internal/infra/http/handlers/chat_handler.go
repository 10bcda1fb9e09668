package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/infra/http/middleware"
	"github.com/pjcweb/site-backend/internal/usecase"
)

type ChatHandler struct {
	Chat *usecase.ChatService
	Repo entity.ChatRepositoryInterface
}

func NewChatHandler(chat *usecase.ChatService, repo entity.ChatRepositoryInterface) *ChatHandler {
	return &ChatHandler{Chat: chat, Repo: repo}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}

	output, err := h.Chat.Chat(r.Context(), req.SessionID, req.Message)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, err)
			return
		}
		middleware.RecordIntegrationError("openai")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "chat service unavailable", Code: "PROVIDER_ERROR"})
		return
	}

	middleware.RecordChatMessage()
	writeJSON(w, http.StatusOK, output)
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Repo.History(r.Context(), chi.URLParam(r, "sessionID"), 50)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
