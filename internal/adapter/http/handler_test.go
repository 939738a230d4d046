package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
	"launchpro/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCampaignUseCase) {
	t.Helper()
	svc := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger), svc
}

func TestSubmitCampaignReturnsQueuePosition(t *testing.T) {
	h, svc := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().SubmitCampaign(mock.Anything, mock.Anything).
		Return(&port.SubmitCampaignResponse{CampaignID: id, Status: domain.StatusQueued, QueuePosition: 2}, nil)

	body := `{"name":"Keto Gummies","type":"conversions","country":"US","language":"en",` +
		`"platforms":[{"platform":"meta","budget":5000}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp port.SubmitCampaignResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CampaignID != id || resp.QueuePosition != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSubmitCampaignMapsValidationErrorsTo422(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().SubmitCampaign(mock.Anything, mock.Anything).
		Return(nil, &port.ValidationError{Field: "country", Reason: `"KP" is not on the allow-list`})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "country") {
		t.Fatalf("field name missing from body: %s", rec.Body.String())
	}
}

func TestSubmitCampaignRejectsMalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetCampaignMapsNotFoundTo404(t *testing.T) {
	h, svc := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().GetCampaign(mock.Anything, id).Return(nil, port.ErrCampaignNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+id.String(), nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetCampaignRejectsMalformedID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetCampaignProjectsErrorDetails(t *testing.T) {
	h, svc := newTestHandler(t)

	id := uuid.New()
	c := &domain.Campaign{
		ID:     id,
		Name:   "VPN Trial",
		Status: domain.StatusFailed,
		Error: &domain.ErrorDetails{
			Step:     "ad",
			Message:  "Could not create the ad (meta)",
			Platform: "meta",
		},
		Launches: []domain.PlatformLaunch{
			{Platform: "meta", Status: domain.LaunchFailed, Error: "creative rejected"},
			{Platform: "google", Status: domain.LaunchActive, ExternalAdID: "google-ad-1"},
		},
	}
	svc.EXPECT().GetCampaign(mock.Anything, id).Return(c, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+id.String(), nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp campaignResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Platform != "meta" {
		t.Fatalf("error details missing: %+v", resp.Error)
	}
	if len(resp.Launches) != 2 {
		t.Fatalf("expected 2 launches, got %d", len(resp.Launches))
	}
}

func TestWithdrawMapsInvalidTransitionTo409(t *testing.T) {
	h, svc := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().Withdraw(mock.Anything, id).
		Return(&domain.InvalidTransitionError{From: domain.StatusActive, Event: domain.EventWithdraw})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/campaigns/"+id.String()+"/queue", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAdvanceQueueReportsIdleQueue(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().AdvanceQueue(mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/queue/advance", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAdvanceQueueReturnsProcessedCampaign(t *testing.T) {
	h, svc := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().AdvanceQueue(mock.Anything).Return(&id, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/queue/advance", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]uuid.UUID
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["campaign_id"] != id {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestArticleApprovalReturnsResolvedStatus(t *testing.T) {
	h, svc := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().ResolveArticleApproval(mock.Anything, id).Return(domain.StatusActive, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/article-approval", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), string(domain.StatusActive)) {
		t.Fatalf("status missing from body: %s", rec.Body.String())
	}
}
