package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrBlogPostNotFound = errors.New("blog post not found")
var ErrSocialPostNotFound = errors.New("social post not found")
var ErrAffiliateLinkNotFound = errors.New("affiliate link not found")

type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	FeaturedImage string    `json:"featured_image"`
	ReadingTime   int       `json:"reading_time"`
	Timestamp     time.Time `json:"timestamp"`
}

type SocialPost struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	Content    string    `json:"content"`
	MediaURL   string    `json:"media_url"`
	MediaType  string    `json:"media_type"`
	AuthorName string    `json:"author_name"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Shares     int       `json:"shares"`
	Hashtags   []string  `json:"hashtags"`
	Featured   bool      `json:"featured"`
	Timestamp  time.Time `json:"timestamp"`
}

// SocialPlatform describes a share target; the set is fixed server-side.
type SocialPlatform struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type SocialShare struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Platform  string    `json:"platform"`
	Timestamp time.Time `json:"timestamp"`
}

type AffiliateLink struct {
	ID          string    `json:"id"`
	PartnerName string    `json:"partner_name"`
	Link        string    `json:"link"`
	Clicks      int       `json:"clicks"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewAffiliateLink(partnerName, link string) *AffiliateLink {
	return &AffiliateLink{
		ID:          uuid.New().String(),
		PartnerName: partnerName,
		Link:        link,
		Timestamp:   time.Now().UTC(),
	}
}

type SocialRepositoryInterface interface {
	SeedPosts(ctx context.Context, posts []SocialPost) error
	ListPosts(ctx context.Context, limit int, featuredOnly bool) ([]SocialPost, error)
	FindPost(ctx context.Context, id string) (*SocialPost, error)

	// IncrementEngagement bumps one of likes/comments/shares atomically.
	IncrementEngagement(ctx context.Context, id, action string) error

	RecordShare(ctx context.Context, share *SocialShare) error
	ShareStats(ctx context.Context) (map[string]int, error)
}

type AffiliateRepositoryInterface interface {
	Create(ctx context.Context, link *AffiliateLink) error
	List(ctx context.Context) ([]AffiliateLink, error)
	IncrementClicks(ctx context.Context, id string) error
}
