package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pjcweb/site-backend/internal/entity"
)

type SiteHandler struct {
	SiteRepo      entity.SiteRepositoryInterface
	AffiliateRepo entity.AffiliateRepositoryInterface
}

func NewSiteHandler(siteRepo entity.SiteRepositoryInterface, affiliateRepo entity.AffiliateRepositoryInterface) *SiteHandler {
	return &SiteHandler{SiteRepo: siteRepo, AffiliateRepo: affiliateRepo}
}

func (h *SiteHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "PJC Web Designs API"})
}

func (h *SiteHandler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientName string `json:"client_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}
	if req.ClientName == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "client_name is required", Code: "VALIDATION_ERROR"})
		return
	}

	check := entity.NewStatusCheck(req.ClientName)
	if err := h.SiteRepo.CreateStatusCheck(r.Context(), check); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, check)
}

func (h *SiteHandler) ListStatusChecks(w http.ResponseWriter, r *http.Request) {
	limit := 1000
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	checks, err := h.SiteRepo.ListStatusChecks(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}

func (h *SiteHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone,omitempty"`
		Service string `json:"service,omitempty"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}

	submission, err := entity.NewContactSubmission(req.Name, req.Email, req.Phone, req.Service, req.Message)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	if err := h.SiteRepo.CreateContact(r.Context(), submission); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, submission)
}

func (h *SiteHandler) CreateAffiliateLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PartnerName string `json:"partner_name"`
		Link        string `json:"link"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}
	if req.PartnerName == "" || req.Link == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "partner_name and link are required", Code: "VALIDATION_ERROR"})
		return
	}

	link := entity.NewAffiliateLink(req.PartnerName, req.Link)
	if err := h.AffiliateRepo.Create(r.Context(), link); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *SiteHandler) ListAffiliateLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.AffiliateRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"links": links})
}

func (h *SiteHandler) TrackAffiliateClick(w http.ResponseWriter, r *http.Request) {
	if err := h.AffiliateRepo.IncrementClicks(r.Context(), chi.URLParam(r, "linkID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *SiteHandler) RecordPageView(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page     string `json:"page"`
		Referrer string `json:"referrer,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}
	if req.Page == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "page is required", Code: "VALIDATION_ERROR"})
		return
	}

	view := &entity.PageView{
		ID:       uuid.New().String(),
		Page:     req.Page,
		Referrer: req.Referrer,
	}
	if err := h.SiteRepo.RecordPageView(r.Context(), view); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func (h *SiteHandler) Performance(w http.ResponseWriter, r *http.Request) {
	views, err := h.SiteRepo.CountPageViews(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	contacts, err := h.SiteRepo.CountContacts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	conversionRate := 0.0
	if views > 0 {
		conversionRate = float64(contacts) / float64(views)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"page_views":      views,
		"contacts":        contacts,
		"conversion_rate": conversionRate,
	})
}
