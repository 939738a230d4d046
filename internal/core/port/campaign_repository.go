package port

import (
	"context"

	"github.com/google/uuid"

	"launchpro/internal/core/domain"
)

// CampaignRepository defines the persistence layer for the launch pipeline.
// It is an outbound port in hexagonal architecture. Every pipeline stage
// writes its outcome through this interface before the next stage begins, so
// a crash leaves the campaign resumable from the last persisted state.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign together with its platform
	// launches.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign with its launches, or
	// ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns, newest first, with launches.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListQueued returns campaigns in QUEUED status ordered by enqueue
	// time. Used to rebuild the admission queue after a restart.
	ListQueued(ctx context.Context) ([]domain.Campaign, error)
	// UpdateStatus persists a status change. The repository stamps
	// queued_at when entering QUEUED and launched_at when entering ACTIVE.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	// SaveContent persists the campaign's copy, keywords, article and
	// affiliate identifiers.
	SaveContent(ctx context.Context, c *domain.Campaign) error
	// SaveErrorDetails attaches error details to a campaign; nil clears
	// them.
	SaveErrorDetails(ctx context.Context, id uuid.UUID, details *domain.ErrorDetails) error
	// UpdatePlatformLaunch persists one launch's external identifiers,
	// media, status and error.
	UpdatePlatformLaunch(ctx context.Context, l *domain.PlatformLaunch) error
}
