package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pjcweb/site-backend/internal/entity"
)

type ChatService struct {
	Provider ChatProvider
	Repo     entity.ChatRepositoryInterface
}

func NewChatService(provider ChatProvider, repo entity.ChatRepositoryInterface) *ChatService {
	return &ChatService{Provider: provider, Repo: repo}
}

type ChatOutput struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (*ChatOutput, error) {
	if message == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "message is required"}
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	reply, err := s.Provider.Complete(ctx, sessionID, message)
	if err != nil {
		return nil, fmt.Errorf("chat provider: %w", err)
	}

	record := &entity.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Message:   message,
		Response:  reply,
	}
	if err := s.Repo.SaveMessage(ctx, record); err != nil {
		return nil, err
	}

	return &ChatOutput{Response: reply, SessionID: sessionID}, nil
}
