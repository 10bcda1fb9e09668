package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/pjcweb/site-backend/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) IncrementScore(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockLeadRepository) AppendActivity(ctx context.Context, activity *entity.LeadActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockLeadRepository) ListActivities(ctx context.Context, leadID string) ([]entity.LeadActivity, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeadActivity), args.Error(1)
}

func TestScoreNewLead(t *testing.T) {
	t.Run("Minimal Lead Gets Base Score", func(t *testing.T) {
		lead := &entity.Lead{Name: "Ana", Email: "ana@example.com"}

		assert.Equal(t, 10, ScoreNewLead(lead))
	})

	t.Run("Every Field Filled Saturates At 100", func(t *testing.T) {
		lead := &entity.Lead{
			Name:         "Ana",
			Email:        "ana@example.com",
			Phone:        "+1 555 0100",
			BusinessType: "restaurant",
			Problem:      "no online presence",
			BudgetRange:  "5000_plus",
			LeadSource:   "referral",
		}

		assert.Equal(t, 100, ScoreNewLead(lead))
	})

	t.Run("Unknown Budget And Source Score Zero", func(t *testing.T) {
		lead := &entity.Lead{
			Name:        "Ana",
			Email:       "ana@example.com",
			BudgetRange: "a_million_dollars",
			LeadSource:  "carrier_pigeon",
		}

		assert.Equal(t, 10, ScoreNewLead(lead))
	})

	t.Run("Score Always Within Bounds", func(t *testing.T) {
		budgets := []string{"", "under_1000", "1000_2500", "2500_5000", "5000_plus", "bogus"}
		sources := []string{"", "google_search", "referral", "social_media", "directory", "direct", "paid_ad", "bogus"}

		for _, b := range budgets {
			for _, s := range sources {
				lead := &entity.Lead{
					Name:         "Ana",
					Email:        "ana@example.com",
					Phone:        "+1 555 0100",
					BusinessType: "retail",
					Problem:      "slow site",
					BudgetRange:  b,
					LeadSource:   s,
				}
				score := ScoreNewLead(lead)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	})
}

func TestActivityScore(t *testing.T) {
	assert.Equal(t, 1, ActivityScore("page_view"))
	assert.Equal(t, 40, ActivityScore("consultation_booked"))
	assert.Equal(t, 0, ActivityScore("unknown_event"))
	assert.Equal(t, 0, ActivityScore(""))
}

func TestLeadServiceCapture(t *testing.T) {
	t.Run("Scores And Persists", func(t *testing.T) {
		repo := new(MockLeadRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := NewLeadService(repo)
		lead, err := svc.Capture(context.Background(), CaptureLeadInput{
			Name:        "Ana",
			Email:       "ana@example.com",
			Phone:       "+1 555 0100",
			BudgetRange: "2500_5000",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, lead.ID)
		assert.Equal(t, entity.LeadStatusNew, lead.Status)
		assert.Equal(t, 50, lead.LeadScore) // 10 base + 15 phone + 25 budget
		repo.AssertExpectations(t)
	})

	t.Run("Missing Email Rejected Before Repository", func(t *testing.T) {
		repo := new(MockLeadRepository)

		svc := NewLeadService(repo)
		lead, err := svc.Capture(context.Background(), CaptureLeadInput{Name: "Ana"})

		assert.Nil(t, lead)
		assert.True(t, IsDomainError(err))
		repo.AssertNotCalled(t, "Create")
	})
}

func TestLeadServiceRecordActivity(t *testing.T) {
	t.Run("Appends Then Increments", func(t *testing.T) {
		repo := new(MockLeadRepository)
		repo.On("FindByID", mock.Anything, "lead-1").Return(&entity.Lead{ID: "lead-1", LeadScore: 95}, nil)
		repo.On("AppendActivity", mock.Anything, mock.Anything).Return(nil)
		repo.On("IncrementScore", mock.Anything, "lead-1", 40).Return(nil)

		svc := NewLeadService(repo)
		activity, err := svc.RecordActivity(context.Background(), "lead-1", "consultation_booked")

		assert.NoError(t, err)
		assert.Equal(t, 40, activity.ScoreChange)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Activity Records Zero Delta", func(t *testing.T) {
		repo := new(MockLeadRepository)
		repo.On("FindByID", mock.Anything, "lead-1").Return(&entity.Lead{ID: "lead-1"}, nil)
		repo.On("AppendActivity", mock.Anything, mock.Anything).Return(nil)
		repo.On("IncrementScore", mock.Anything, "lead-1", 0).Return(nil)

		svc := NewLeadService(repo)
		activity, err := svc.RecordActivity(context.Background(), "lead-1", "teleported")

		assert.NoError(t, err)
		assert.Equal(t, 0, activity.ScoreChange)
	})

	t.Run("Unknown Lead Rejected", func(t *testing.T) {
		repo := new(MockLeadRepository)
		repo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrLeadNotFound)

		svc := NewLeadService(repo)
		activity, err := svc.RecordActivity(context.Background(), "nope", "page_view")

		assert.Nil(t, activity)
		assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	})
}

func TestLeadServiceUpdateStatus(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("UpdateStatus", mock.Anything, "lead-1", entity.LeadStatusContacted).Return(nil)

	svc := NewLeadService(repo)

	assert.NoError(t, svc.UpdateStatus(context.Background(), "lead-1", entity.LeadStatusContacted))
	assert.Error(t, svc.UpdateStatus(context.Background(), "lead-1", "vaporized"))
	repo.AssertExpectations(t)
}
