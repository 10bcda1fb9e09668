package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pjcweb/site-backend/internal/entity"
)

type ContentHandler struct {
	SocialRepo entity.SocialRepositoryInterface
}

func NewContentHandler(socialRepo entity.SocialRepositoryInterface) *ContentHandler {
	return &ContentHandler{SocialRepo: socialRepo}
}

func (h *ContentHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts := entity.ListBlogPosts()
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts, "count": len(posts)})
}

func (h *ContentHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := entity.FindBlogPost(chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *ContentHandler) BlogCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": entity.BlogCategories()})
}

func (h *ContentHandler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"platforms": entity.ListSocialPlatforms()})
}

func (h *ContentHandler) ListSocialPosts(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	posts, err := h.SocialRepo.ListPosts(r.Context(), limit, false)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts, "count": len(posts)})
}

func (h *ContentHandler) FeaturedSocialPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.SocialRepo.ListPosts(r.Context(), 20, true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts, "count": len(posts)})
}

func (h *ContentHandler) GetSocialPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.SocialRepo.FindPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *ContentHandler) Engage(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	action := r.URL.Query().Get("action")

	switch action {
	case "like", "comment", "share":
	default:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "action must be like, comment or share", Code: "VALIDATION_ERROR"})
		return
	}

	if err := h.SocialRepo.IncrementEngagement(r.Context(), postID, action); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.SocialRepo.FindPost(r.Context(), postID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *ContentHandler) RecordShare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostID   string `json:"post_id"`
		Platform string `json:"platform"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}
	if _, ok := entity.FindSocialPlatform(req.Platform); !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "unknown platform: " + req.Platform, Code: "VALIDATION_ERROR"})
		return
	}

	share := &entity.SocialShare{
		ID:       uuid.New().String(),
		PostID:   req.PostID,
		Platform: req.Platform,
	}
	if err := h.SocialRepo.RecordShare(r.Context(), share); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, share)
}

func (h *ContentHandler) ShareStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.SocialRepo.ShareStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	total := 0
	for _, n := range stats {
		total += n
	}
	writeJSON(w, http.StatusOK, map[string]any{"total_shares": total, "by_platform": stats})
}
