package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pjcweb/site-backend/internal/entity"
)

// SiteRepository covers the small bookkeeping tables: contact forms, status
// checks and page views. One struct, they share no logic worth splitting.
type SiteRepository struct {
	DB *sql.DB
}

func NewSiteRepository(db *sql.DB) *SiteRepository {
	return &SiteRepository{DB: db}
}

func (r *SiteRepository) CreateContact(ctx context.Context, c *entity.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, phone, service, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, c.ID, c.Name, c.Email, nullString(c.Phone), c.Service, c.Message, c.Timestamp)
	if err != nil {
		return fmt.Errorf("storing contact submission: %w", err)
	}
	return nil
}

func (r *SiteRepository) CreateStatusCheck(ctx context.Context, s *entity.StatusCheck) error {
	query := `INSERT INTO status_checks (id, client_name, created_at) VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.ClientName, s.Timestamp)
	if err != nil {
		return fmt.Errorf("storing status check: %w", err)
	}
	return nil
}

func (r *SiteRepository) ListStatusChecks(ctx context.Context, limit int) ([]entity.StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT id, client_name, created_at FROM status_checks ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing status checks: %w", err)
	}
	defer rows.Close()

	var checks []entity.StatusCheck
	for rows.Next() {
		var s entity.StatusCheck
		if err := rows.Scan(&s.ID, &s.ClientName, &s.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, s)
	}
	return checks, rows.Err()
}

func (r *SiteRepository) RecordPageView(ctx context.Context, v *entity.PageView) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `INSERT INTO page_views (id, page, referrer, created_at) VALUES ($1, $2, $3, NOW())`
	_, err := r.DB.ExecContext(ctx, query, v.ID, v.Page, nullString(v.Referrer))
	if err != nil {
		return fmt.Errorf("recording page view: %w", err)
	}
	return nil
}

func (r *SiteRepository) CountPageViews(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM page_views`).Scan(&n)
	return n, err
}

func (r *SiteRepository) CountContacts(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n)
	return n, err
}
