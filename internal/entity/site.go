package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a raw contact-form entry, kept separate from the lead
// pipeline so form spam never pollutes scored leads.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewContactSubmission(name, email, phone, service, message string) (*ContactSubmission, error) {
	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}
	return &ContactSubmission{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Service:   service,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, nil
}

type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}

type PageView struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"`
	Referrer  string    `json:"referrer,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type SiteRepositoryInterface interface {
	CreateContact(ctx context.Context, c *ContactSubmission) error
	CreateStatusCheck(ctx context.Context, s *StatusCheck) error
	ListStatusChecks(ctx context.Context, limit int) ([]StatusCheck, error)
	RecordPageView(ctx context.Context, v *PageView) error
	CountPageViews(ctx context.Context) (int, error)
	CountContacts(ctx context.Context) (int, error)
}

type ChatRepositoryInterface interface {
	SaveMessage(ctx context.Context, m *ChatMessage) error
	History(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)
}
