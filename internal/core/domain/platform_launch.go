package domain

import (
	"time"

	"github.com/google/uuid"
)

// LaunchStatus mirrors the terminal subset of the campaign state machine for
// a single platform.
type LaunchStatus string

const (
	LaunchPending LaunchStatus = "pending"
	LaunchActive  LaunchStatus = "active"
	LaunchFailed  LaunchStatus = "failed"
)

// PlatformLaunch is one (campaign, ad platform) pair. External identifiers
// are filled in progressively as the platform's campaign, group and ad are
// created. Budget is stored in integer units (e.g. cents).
type PlatformLaunch struct {
	ID             uuid.UUID
	CampaignID     uuid.UUID
	Platform       string
	Budget         int64
	ScheduledStart time.Time
	GenerateWithAI bool

	AdCopy string
	Media  []MediaAsset

	ExternalCampaignID string
	ExternalGroupID    string
	ExternalAdID       string

	Status LaunchStatus
	Error  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MediaKind distinguishes media artifact types.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaAsset points at a generated image or video. AssetID is the platform's
// identifier once the asset has been uploaded.
type MediaAsset struct {
	Kind        MediaKind `json:"kind"`
	URL         string    `json:"url"`
	AspectRatio string    `json:"aspect_ratio"`
	AssetID     string    `json:"asset_id,omitempty"`
}
