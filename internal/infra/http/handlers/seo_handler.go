package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/pjcweb/site-backend/internal/entity"
)

type SEOHandler struct {
	BaseURL string
}

func NewSEOHandler(baseURL string) *SEOHandler {
	return &SEOHandler{BaseURL: baseURL}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	today := time.Now().UTC().Format("2006-01-02")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.BaseURL + "/", LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: h.BaseURL + "/#pricing", LastMod: today, ChangeFreq: "monthly", Priority: "0.9"},
			{Loc: h.BaseURL + "/#portfolio", LastMod: today, ChangeFreq: "weekly", Priority: "0.8"},
			{Loc: h.BaseURL + "/#blog", LastMod: today, ChangeFreq: "daily", Priority: "0.8"},
			{Loc: h.BaseURL + "/#contact", LastMod: today, ChangeFreq: "monthly", Priority: "0.7"},
		},
	}

	for _, post := range entity.ListBlogPosts() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.BaseURL + "/blog/" + post.Slug,
			LastMod:    post.Timestamp.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, xml.Header)
	xml.NewEncoder(w).Encode(set)
}

func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `User-agent: *
Allow: /
Disallow: /api/
Disallow: /admin/
Crawl-delay: 1

Sitemap: %s/sitemap.xml
`, h.BaseURL)
}

// Meta serves the structured data the frontend injects into the page head.
func (h *SEOHandler) Meta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"title":       "PJC Web Designs | Modern Web Design & Development",
		"description": "Modern web design with urban tech aesthetics. Custom websites, e-commerce and SEO for small businesses.",
		"canonical":   h.BaseURL + "/",
		"og": map[string]string{
			"og:title":       "PJC Web Designs",
			"og:description": "Modern web design with urban tech aesthetics.",
			"og:type":        "website",
			"og:url":         h.BaseURL + "/",
		},
		"json_ld": map[string]any{
			"@context": "https://schema.org",
			"@type":    "WebDesignCompany",
			"name":     "PJC Web Designs",
			"url":      h.BaseURL,
			"areaServed": map[string]string{
				"@type": "Country",
				"name":  "United States",
			},
		},
	})
}
