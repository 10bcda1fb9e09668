package entity

import "time"

// Blog content is editorial, shipped with the binary and read-only at
// runtime. Engagement-bearing content (social posts) lives in the database
// instead; see SocialRepositoryInterface.

var blogPosts = []BlogPost{
	{
		ID:            "b1a4c0de-0001-4b3e-9d21-6f0a11aa0001",
		Title:         "The Future of Web Design: Urban Tech Aesthetics",
		Slug:          "the-future-of-web-design-urban-tech-aesthetics",
		Excerpt:       "Why the next wave of small-business sites borrows from street culture and developer tooling alike.",
		Content:       "Design systems used to chase corporate polish. The sites converting best for our clients this year do the opposite: dense type, honest grids, fast pages. This post walks through three builds and the numbers behind them.",
		Author:        "PJC Studio",
		Category:      "Design",
		Tags:          []string{"design", "trends", "branding"},
		FeaturedImage: "/images/blog/urban-tech.jpg",
		ReadingTime:   6,
		Timestamp:     time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:            "b1a4c0de-0002-4b3e-9d21-6f0a11aa0002",
		Title:         "Page Count Pricing: Why We Publish Our Math",
		Slug:          "page-count-pricing-why-we-publish-our-math",
		Excerpt:       "Our pricing calculator is public on purpose. Here is how the numbers are built.",
		Content:       "Every package has a base price, a number of included pages, and a flat per-page rate above that. No discovery calls to get a quote, no surprise invoices. We explain each tier and when the flat-rate service packages make more sense.",
		Author:        "PJC Studio",
		Category:      "Business",
		Tags:          []string{"pricing", "transparency"},
		FeaturedImage: "/images/blog/pricing-math.jpg",
		ReadingTime:   4,
		Timestamp:     time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:            "b1a4c0de-0003-4b3e-9d21-6f0a11aa0003",
		Title:         "SEO Basics Every Local Business Gets Wrong",
		Slug:          "seo-basics-every-local-business-gets-wrong",
		Excerpt:       "Sitemaps, robots.txt and structured data are table stakes. Most local sites ship none of them.",
		Content:       "We audited forty local-business sites. Thirty-one had no sitemap, twenty-six blocked nothing and allowed nothing in robots.txt, and only four carried structured data. Fixing these three files is an afternoon of work with measurable ranking impact.",
		Author:        "PJC Studio",
		Category:      "SEO",
		Tags:          []string{"seo", "local-business"},
		FeaturedImage: "/images/blog/seo-basics.jpg",
		ReadingTime:   5,
		Timestamp:     time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:            "b1a4c0de-0004-4b3e-9d21-6f0a11aa0004",
		Title:         "From Contact Form to Booked Call: Scoring Your Leads",
		Slug:          "from-contact-form-to-booked-call-scoring-your-leads",
		Excerpt:       "A simple point system tells you which inquiries deserve a same-day reply.",
		Content:       "Not every form submission is worth a phone call. We score leads on what they tell us up front and on what they do afterwards: opening emails, viewing pricing, requesting a quote. The point tables are small, boring and effective.",
		Author:        "PJC Studio",
		Category:      "Business",
		Tags:          []string{"leads", "crm", "sales"},
		FeaturedImage: "/images/blog/lead-scoring.jpg",
		ReadingTime:   7,
		Timestamp:     time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC),
	},
}

func ListBlogPosts() []BlogPost {
	out := make([]BlogPost, len(blogPosts))
	copy(out, blogPosts)
	return out
}

func FindBlogPost(slug string) (*BlogPost, error) {
	for i := range blogPosts {
		if blogPosts[i].Slug == slug {
			return &blogPosts[i], nil
		}
	}
	return nil, ErrBlogPostNotFound
}

func BlogCategories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range blogPosts {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

var socialPlatforms = []SocialPlatform{
	{ID: "facebook", Name: "Facebook", Icon: "facebook", Color: "#1877F2"},
	{ID: "twitter", Name: "Twitter", Icon: "twitter", Color: "#1DA1F2"},
	{ID: "linkedin", Name: "LinkedIn", Icon: "linkedin", Color: "#0A66C2"},
	{ID: "instagram", Name: "Instagram", Icon: "instagram", Color: "#E4405F"},
	{ID: "pinterest", Name: "Pinterest", Icon: "pinterest", Color: "#BD081C"},
	{ID: "reddit", Name: "Reddit", Icon: "reddit", Color: "#FF4500"},
	{ID: "whatsapp", Name: "WhatsApp", Icon: "whatsapp", Color: "#25D366"},
	{ID: "telegram", Name: "Telegram", Icon: "telegram", Color: "#26A5E4"},
}

func ListSocialPlatforms() []SocialPlatform {
	out := make([]SocialPlatform, len(socialPlatforms))
	copy(out, socialPlatforms)
	return out
}

func FindSocialPlatform(id string) (*SocialPlatform, bool) {
	for i := range socialPlatforms {
		if socialPlatforms[i].ID == id {
			return &socialPlatforms[i], true
		}
	}
	return nil, false
}

// DefaultSocialPosts seeds the social feed on first boot. Engagement counters
// on these rows mutate afterwards, so they live in the database, not here.
func DefaultSocialPosts() []SocialPost {
	ts := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	return []SocialPost{
		{ID: "s0c1a1aa-0001-4e00-8000-000000000001", Platform: "instagram", Content: "Before/after: a moving company site rebuilt in nine days.", MediaURL: "/images/social/moving-rebuild.jpg", MediaType: "image", AuthorName: "pjcwebdesigns", Likes: 214, Comments: 18, Shares: 9, Hashtags: []string{"webdesign", "smallbusiness"}, Featured: true, Timestamp: ts},
		{ID: "s0c1a1aa-0002-4e00-8000-000000000002", Platform: "twitter", Content: "Published our pricing math. No quote calls, no surprises.", MediaURL: "", MediaType: "text", AuthorName: "pjcwebdesigns", Likes: 97, Comments: 12, Shares: 31, Hashtags: []string{"pricing", "buildinpublic"}, Featured: true, Timestamp: ts.Add(24 * time.Hour)},
		{ID: "s0c1a1aa-0003-4e00-8000-000000000003", Platform: "linkedin", Content: "Case study: lead scoring doubled our client's reply rate.", MediaURL: "/images/social/lead-scoring-case.png", MediaType: "image", AuthorName: "PJC Web Designs", Likes: 152, Comments: 26, Shares: 14, Hashtags: []string{"leadgen", "casestudy"}, Featured: true, Timestamp: ts.Add(48 * time.Hour)},
		{ID: "s0c1a1aa-0004-4e00-8000-000000000004", Platform: "facebook", Content: "Client spotlight: NewReach Transport's booking page is live.", MediaURL: "/images/social/newreach-launch.jpg", MediaType: "image", AuthorName: "PJC Web Designs", Likes: 63, Comments: 8, Shares: 5, Hashtags: []string{"launch", "transport"}, Featured: false, Timestamp: ts.Add(72 * time.Hour)},
		{ID: "s0c1a1aa-0005-4e00-8000-000000000005", Platform: "instagram", Content: "Office build day. New studio, same deadlines.", MediaURL: "/images/social/studio.jpg", MediaType: "image", AuthorName: "pjcwebdesigns", Likes: 301, Comments: 44, Shares: 7, Hashtags: []string{"studio"}, Featured: false, Timestamp: ts.Add(96 * time.Hour)},
		{ID: "s0c1a1aa-0006-4e00-8000-000000000006", Platform: "twitter", Content: "Shipping an XML sitemap is still the cheapest SEO win there is.", MediaURL: "", MediaType: "text", AuthorName: "pjcwebdesigns", Likes: 188, Comments: 21, Shares: 52, Hashtags: []string{"seo"}, Featured: false, Timestamp: ts.Add(120 * time.Hour)},
	}
}
