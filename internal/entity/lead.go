package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusBooked    = "booked"
	LeadStatusClosed    = "closed"
	LeadStatusLost      = "lost"
)

type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	BusinessType string     `json:"business_type,omitempty"`
	Problem      string     `json:"problem,omitempty"`
	BudgetRange  string     `json:"budget_range,omitempty"`
	LeadSource   string     `json:"lead_source,omitempty"`
	Status       string     `json:"status"`
	LeadScore    int        `json:"lead_score"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LeadActivity is an append-only log entry. Rows are never mutated after
// insert; the lead's score accumulates their deltas.
type LeadActivity struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	ActivityType string    `json:"activity_type"`
	ScoreChange  int       `json:"score_change"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLead(name, email, phone, businessType, problem, budgetRange, source string) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		BusinessType: businessType,
		Problem:      problem,
		BudgetRange:  budgetRange,
		LeadSource:   source,
		Status:       LeadStatusNew,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}
	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusBooked, LeadStatusClosed, LeadStatusLost:
		return true
	}
	return false
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, limit int) ([]Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// IncrementScore adds delta to lead_score and stamps last_activity in one
	// statement. The running total is intentionally not clamped here.
	IncrementScore(ctx context.Context, id string, delta int) error

	AppendActivity(ctx context.Context, activity *LeadActivity) error
	ListActivities(ctx context.Context, leadID string) ([]LeadActivity, error)
}
