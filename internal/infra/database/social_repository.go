package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pjcweb/site-backend/internal/entity"
)

type SocialRepository struct {
	DB *sql.DB
}

func NewSocialRepository(db *sql.DB) *SocialRepository {
	return &SocialRepository{DB: db}
}

// SeedPosts installs the default feed on first boot. Existing rows keep
// their engagement counters.
func (r *SocialRepository) SeedPosts(ctx context.Context, posts []entity.SocialPost) error {
	query := `
		INSERT INTO social_posts (
			id, platform, content, media_url, media_type, author_name,
			likes, comments, shares, hashtags, featured, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
	`
	for _, p := range posts {
		_, err := r.DB.ExecContext(ctx, query,
			p.ID, p.Platform, p.Content, p.MediaURL, p.MediaType, p.AuthorName,
			p.Likes, p.Comments, p.Shares, pq.Array(p.Hashtags), p.Featured, p.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("seeding social post %s: %w", p.ID, err)
		}
	}
	return nil
}

const socialColumns = `
	id, platform, content, COALESCE(media_url, ''), media_type, author_name,
	likes, comments, shares, hashtags, featured, created_at
`

func (r *SocialRepository) ListPosts(ctx context.Context, limit int, featuredOnly bool) ([]entity.SocialPost, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + socialColumns + ` FROM social_posts`
	if featuredOnly {
		query += ` WHERE featured`
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing social posts: %w", err)
	}
	defer rows.Close()

	var posts []entity.SocialPost
	for rows.Next() {
		var p entity.SocialPost
		if err := rows.Scan(
			&p.ID, &p.Platform, &p.Content, &p.MediaURL, &p.MediaType, &p.AuthorName,
			&p.Likes, &p.Comments, &p.Shares, pq.Array(&p.Hashtags), &p.Featured, &p.Timestamp,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *SocialRepository) FindPost(ctx context.Context, id string) (*entity.SocialPost, error) {
	query := `SELECT ` + socialColumns + ` FROM social_posts WHERE id = $1`

	var p entity.SocialPost
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Platform, &p.Content, &p.MediaURL, &p.MediaType, &p.AuthorName,
		&p.Likes, &p.Comments, &p.Shares, pq.Array(&p.Hashtags), &p.Featured, &p.Timestamp,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrSocialPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading social post: %w", err)
	}
	return &p, nil
}

// IncrementEngagement bumps a single counter atomically. The action column
// is whitelisted here, never interpolated from the request.
func (r *SocialRepository) IncrementEngagement(ctx context.Context, id, action string) error {
	var column string
	switch action {
	case "like":
		column = "likes"
	case "comment":
		column = "comments"
	case "share":
		column = "shares"
	default:
		return fmt.Errorf("unknown engagement action %q", action)
	}

	query := fmt.Sprintf(`UPDATE social_posts SET %s = %s + 1 WHERE id = $1`, column, column)
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("incrementing %s: %w", column, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrSocialPostNotFound
	}
	return nil
}

func (r *SocialRepository) RecordShare(ctx context.Context, share *entity.SocialShare) error {
	query := `INSERT INTO social_shares (id, post_id, platform, created_at) VALUES ($1, $2, $3, NOW())`
	_, err := r.DB.ExecContext(ctx, query, share.ID, share.PostID, share.Platform)
	if err != nil {
		return fmt.Errorf("recording share: %w", err)
	}
	return nil
}

func (r *SocialRepository) ShareStats(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT platform, COUNT(*) FROM social_shares GROUP BY platform`)
	if err != nil {
		return nil, fmt.Errorf("loading share stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var platform string
		var count int
		if err := rows.Scan(&platform, &count); err != nil {
			return nil, err
		}
		stats[platform] = count
	}
	return stats, rows.Err()
}
