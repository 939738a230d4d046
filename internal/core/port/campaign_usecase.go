package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"launchpro/internal/core/domain"
)

// SubmitCampaignRequest is the command to create a campaign. Message,
// Keywords and Article may be supplied up front; the content stage skips
// generating whatever the user provided.
type SubmitCampaignRequest struct {
	Name     string              `json:"name"`
	Type     domain.CampaignType `json:"type"`
	Country  string              `json:"country"`
	Language string              `json:"language"`

	Message  string         `json:"message,omitempty"`
	Keywords []string       `json:"keywords,omitempty"`
	Article  domain.Article `json:"article,omitempty"`

	NeedsDesign bool           `json:"needs_design,omitempty"`
	Platforms   []PlatformSpec `json:"platforms"`
}

// PlatformSpec configures one platform launch within a submission.
type PlatformSpec struct {
	Platform       string    `json:"platform"`
	Budget         int64     `json:"budget"`
	ScheduledStart time.Time `json:"scheduled_start"`
	GenerateWithAI bool      `json:"generate_with_ai"`
}

// SubmitCampaignResponse reports the accepted campaign and its queue
// position.
type SubmitCampaignResponse struct {
	CampaignID    uuid.UUID     `json:"campaign_id"`
	Status        domain.Status `json:"status"`
	QueuePosition int           `json:"queue_position"`
}

// CampaignUseCase is the primary port into the launch orchestrator. Mock
// implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// SubmitCampaign validates the request, persists the campaign and
	// enqueues it. Validation failures return a *ValidationError and the
	// campaign never reaches the queue.
	SubmitCampaign(ctx context.Context, req SubmitCampaignRequest) (*SubmitCampaignResponse, error)

	// AdvanceQueue is the external periodic trigger's entry point. It
	// dequeues the head campaign if no other campaign is mid-startup and
	// runs its launch pipeline to a settled state. It returns the id of
	// the campaign processed, or nil when the queue yielded nothing.
	AdvanceQueue(ctx context.Context) (*uuid.UUID, error)

	// GetCampaign returns the campaign projection with launches and error
	// details.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// ListCampaigns returns all campaign projections, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// Withdraw removes a QUEUED campaign from the queue without side
	// effects, returning it to DRAFT.
	Withdraw(ctx context.Context, id uuid.UUID) error

	// Resubmit re-enqueues a FAILED or DRAFT campaign after the user
	// corrected its configuration, clearing its error details.
	Resubmit(ctx context.Context, id uuid.UUID) (*SubmitCampaignResponse, error)

	// MarkDesignComplete resumes a campaign parked in AWAITING_DESIGN and
	// continues the pipeline.
	MarkDesignComplete(ctx context.Context, id uuid.UUID) error

	// ResolveArticleApproval polls the affiliate network for a campaign in
	// AWAITING_ARTICLE_APPROVAL and resumes the pipeline on approval. The
	// returned status reflects the campaign after resolution.
	ResolveArticleApproval(ctx context.Context, id uuid.UUID) (domain.Status, error)
}
