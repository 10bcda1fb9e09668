package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pjcweb/site-backend/internal/entity"
)

type AffiliateRepository struct {
	DB *sql.DB
}

func NewAffiliateRepository(db *sql.DB) *AffiliateRepository {
	return &AffiliateRepository{DB: db}
}

func (r *AffiliateRepository) Create(ctx context.Context, link *entity.AffiliateLink) error {
	query := `INSERT INTO affiliate_links (id, partner_name, link, clicks, created_at) VALUES ($1, $2, $3, 0, $4)`
	_, err := r.DB.ExecContext(ctx, query, link.ID, link.PartnerName, link.Link, link.Timestamp)
	if err != nil {
		return fmt.Errorf("creating affiliate link: %w", err)
	}
	return nil
}

func (r *AffiliateRepository) List(ctx context.Context) ([]entity.AffiliateLink, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, partner_name, link, clicks, created_at FROM affiliate_links ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing affiliate links: %w", err)
	}
	defer rows.Close()

	var links []entity.AffiliateLink
	for rows.Next() {
		var l entity.AffiliateLink
		if err := rows.Scan(&l.ID, &l.PartnerName, &l.Link, &l.Clicks, &l.Timestamp); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *AffiliateRepository) IncrementClicks(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE affiliate_links SET clicks = clicks + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("incrementing clicks: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrAffiliateLinkNotFound
	}
	return nil
}
