package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pjcweb/site-backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, name, email, phone, business_type, problem, budget_range,
			lead_source, status, lead_score, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.BusinessType),
		nullString(lead.Problem),
		nullString(lead.BudgetRange),
		nullString(lead.LeadSource),
		lead.Status,
		lead.LeadScore,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}
	return nil
}

const leadColumns = `
	id, name, email, COALESCE(phone, ''), COALESCE(business_type, ''),
	COALESCE(problem, ''), COALESCE(budget_range, ''), COALESCE(lead_source, ''),
	status, lead_score, last_activity, created_at, updated_at
`

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.BusinessType,
		&lead.Problem,
		&lead.BudgetRange,
		&lead.LeadSource,
		&lead.Status,
		&lead.LeadScore,
		&lead.LastActivity,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, limit int) ([]entity.Lead, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.BusinessType,
			&lead.Problem,
			&lead.BudgetRange,
			&lead.LeadSource,
			&lead.Status,
			&lead.LeadScore,
			&lead.LastActivity,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating lead status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// IncrementScore accumulates the delta onto the running score and stamps
// last_activity in one statement. No clamp here: only the creation-time
// score is capped at 100.
func (r *LeadRepository) IncrementScore(ctx context.Context, id string, delta int) error {
	query := `
		UPDATE leads
		SET lead_score = lead_score + $1, last_activity = NOW(), updated_at = NOW()
		WHERE id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("incrementing lead score: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) AppendActivity(ctx context.Context, activity *entity.LeadActivity) error {
	query := `
		INSERT INTO lead_activities (id, lead_id, activity_type, score_change, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := r.DB.QueryRowContext(ctx, query, activity.ID, activity.LeadID, activity.ActivityType, activity.ScoreChange).Scan(&activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("appending lead activity: %w", err)
	}
	return nil
}

func (r *LeadRepository) ListActivities(ctx context.Context, leadID string) ([]entity.LeadActivity, error) {
	query := `
		SELECT id, lead_id, activity_type, score_change, created_at
		FROM lead_activities
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("listing lead activities: %w", err)
	}
	defer rows.Close()

	var activities []entity.LeadActivity
	for rows.Next() {
		var a entity.LeadActivity
		if err := rows.Scan(&a.ID, &a.LeadID, &a.ActivityType, &a.ScoreChange, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
