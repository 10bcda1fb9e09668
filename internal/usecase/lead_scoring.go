package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/pjcweb/site-backend/internal/entity"
)

// Budget and source tables are fixed at build time. Unrecognized strings
// contribute 0 rather than erroring: the form is public and we would rather
// under-score a lead than reject a submission.
var budgetScores = map[string]int{
	"under_1000": 5,
	"1000_2500":  15,
	"2500_5000":  25,
	"5000_plus":  35,
}

var sourceScores = map[string]int{
	"google_search": 20,
	"referral":      25,
	"social_media":  10,
	"directory":     10,
	"direct":        15,
	"paid_ad":       15,
}

// activityScores maps named events to point deltas. Unknown types score 0;
// activity instrumentation is best-effort and must never block the caller.
var activityScores = map[string]int{
	"page_view":           1,
	"pricing_view":        5,
	"email_opened":        3,
	"email_clicked":       8,
	"chat_started":        10,
	"contact_form":        15,
	"quote_request":       25,
	"consultation_booked": 40,
}

// ScoreNewLead computes the creation-time score, saturating at 100. Only
// this initial score is capped; later activity increments accumulate
// unclamped (see LeadService.RecordActivity).
func ScoreNewLead(lead *entity.Lead) int {
	score := 10 // having a named, reachable contact at all

	if lead.Phone != "" {
		score += 15
	}
	if lead.BusinessType != "" {
		score += 10
	}
	if lead.Problem != "" {
		score += 15
	}

	score += budgetScores[lead.BudgetRange]
	score += sourceScores[lead.LeadSource]

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ActivityScore returns the point delta for a named activity event, 0 for
// anything unrecognized.
func ActivityScore(activityType string) int {
	return activityScores[activityType]
}

type LeadService struct {
	Repo entity.LeadRepositoryInterface
}

func NewLeadService(repo entity.LeadRepositoryInterface) *LeadService {
	return &LeadService{Repo: repo}
}

type CaptureLeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Problem      string `json:"problem,omitempty"`
	BudgetRange  string `json:"budget_range,omitempty"`
	LeadSource   string `json:"lead_source,omitempty"`
}

func (s *LeadService) Capture(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	lead, err := entity.NewLead(input.Name, input.Email, input.Phone, input.BusinessType, input.Problem, input.BudgetRange, input.LeadSource)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	lead.LeadScore = ScoreNewLead(lead)

	if err := s.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// RecordActivity appends an immutable activity row and accumulates its delta
// onto the lead's score. The increment path applies no upper clamp.
func (s *LeadService) RecordActivity(ctx context.Context, leadID, activityType string) (*entity.LeadActivity, error) {
	lead, err := s.Repo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	delta := ActivityScore(activityType)
	if delta == 0 {
		log.Printf("[leads] unrecognized activity type %q for lead %s, scoring 0", activityType, lead.ID)
	}

	activity := &entity.LeadActivity{
		ID:           uuid.New().String(),
		LeadID:       lead.ID,
		ActivityType: activityType,
		ScoreChange:  delta,
	}

	if err := s.Repo.AppendActivity(ctx, activity); err != nil {
		return nil, err
	}
	if err := s.Repo.IncrementScore(ctx, lead.ID, delta); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *LeadService) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidLeadStatus(status) {
		return &DomainError{Code: "INVALID_STATUS", Message: "unknown lead status: " + status}
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}
