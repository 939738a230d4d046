package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"log/slog"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// campaignResponse is the external projection of a campaign.
type campaignResponse struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Type     domain.CampaignType `json:"type"`
	Country  string              `json:"country"`
	Language string              `json:"language"`

	Message  string          `json:"message,omitempty"`
	Keywords []string        `json:"keywords,omitempty"`
	Article  *domain.Article `json:"article,omitempty"`

	TrackingLink string `json:"tracking_link,omitempty"`
	NeedsDesign  bool   `json:"needs_design,omitempty"`

	Status   domain.Status        `json:"status"`
	Error    *domain.ErrorDetails `json:"error,omitempty"`
	Launches []launchResponse     `json:"launches"`

	CreatedAt  time.Time  `json:"created_at"`
	QueuedAt   *time.Time `json:"queued_at,omitempty"`
	LaunchedAt *time.Time `json:"launched_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type launchResponse struct {
	Platform       string              `json:"platform"`
	Budget         int64               `json:"budget"`
	ScheduledStart time.Time           `json:"scheduled_start"`
	GenerateWithAI bool                `json:"generate_with_ai"`
	AdCopy         string              `json:"ad_copy,omitempty"`
	Media          []domain.MediaAsset `json:"media,omitempty"`

	ExternalCampaignID string `json:"external_campaign_id,omitempty"`
	ExternalGroupID    string `json:"external_group_id,omitempty"`
	ExternalAdID       string `json:"external_ad_id,omitempty"`

	Status domain.LaunchStatus `json:"status"`
	Error  string              `json:"error,omitempty"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:           c.ID,
		Name:         c.Name,
		Type:         c.Type,
		Country:      c.Country,
		Language:     c.Language,
		Message:      c.Message,
		Keywords:     c.Keywords,
		TrackingLink: c.TrackingLink,
		NeedsDesign:  c.NeedsDesign,
		Status:       c.Status,
		Error:        c.Error,
		Launches:     make([]launchResponse, 0, len(c.Launches)),
		CreatedAt:    c.CreatedAt,
		QueuedAt:     c.QueuedAt,
		LaunchedAt:   c.LaunchedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if !c.Article.Empty() {
		article := c.Article
		resp.Article = &article
	}
	for _, l := range c.Launches {
		resp.Launches = append(resp.Launches, launchResponse{
			Platform:           l.Platform,
			Budget:             l.Budget,
			ScheduledStart:     l.ScheduledStart,
			GenerateWithAI:     l.GenerateWithAI,
			AdCopy:             l.AdCopy,
			Media:              l.Media,
			ExternalCampaignID: l.ExternalCampaignID,
			ExternalGroupID:    l.ExternalGroupID,
			ExternalAdID:       l.ExternalAdID,
			Status:             l.Status,
			Error:              l.Error,
		})
	}
	return resp
}

// handleSubmitCampaign accepts a new campaign and enqueues it. The request
// body is decoded into a port.SubmitCampaignRequest. Validation failures
// produce HTTP 422 with the offending field; parsing errors produce
// HTTP 400.
func (h *Handler) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.SubmitCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.SubmitCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, "submit campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

// handleListCampaigns returns all campaigns, newest first.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleGetCampaign returns one campaign with launches and error details.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleWithdraw removes a queued campaign from the queue.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Withdraw(r.Context(), id); err != nil {
		h.writeError(w, "withdraw campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleResubmit re-enqueues a failed or draft campaign.
func (h *Handler) handleResubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.Resubmit(r.Context(), id)
	if err != nil {
		h.writeError(w, "resubmit campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleDesignComplete resumes a campaign waiting for design assets.
func (h *Handler) handleDesignComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if err := h.svc.MarkDesignComplete(r.Context(), id); err != nil {
		h.writeError(w, "design complete", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleArticleApproval polls the affiliate network for the article verdict
// and resumes the pipeline when approved.
func (h *Handler) handleArticleApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	status, err := h.svc.ResolveArticleApproval(r.Context(), id)
	if err != nil {
		h.writeError(w, "article approval", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]domain.Status{"status": status})
}

// campaignID extracts and parses the {id} path parameter. It writes an
// HTTP 400 and returns false when the parameter is missing or malformed.
func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and send generic error
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto HTTP status codes. Validation
// problems map to 422, unknown campaigns to 404, illegal state transitions
// to 409, everything else to 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var (
		validationErr *port.ValidationError
		transitionErr *domain.InvalidTransitionError
		precondErr    *domain.PreconditionError
	)
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.As(err, &transitionErr), errors.As(err, &precondErr):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
