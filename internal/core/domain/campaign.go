package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignType selects the budget-optimization mode used when the campaign
// is created on the ad platforms.
type CampaignType string

const (
	CampaignTypeConversions CampaignType = "conversions"
	CampaignTypeTraffic     CampaignType = "traffic"
	CampaignTypeLeads       CampaignType = "leads"
)

// Campaign is the unit of work driven through the launch pipeline. Copy and
// keyword fields may be empty until the content stage fills them in; the
// affiliate fields are set once the campaign exists on the affiliate network.
type Campaign struct {
	ID       uuid.UUID
	Name     string
	Type     CampaignType
	Country  string
	Language string

	Message  string
	Keywords []string
	Article  Article

	AffiliateCampaignID string
	TrackingLink        string
	ArticleRequestID    string

	// KeywordsSubmitted records that the keyword set reached the affiliate
	// network, independently of who authored the keywords or the article.
	KeywordsSubmitted bool

	// NeedsDesign routes the campaign through AWAITING_DESIGN before it
	// may launch.
	NeedsDesign bool

	Status   Status
	Error    *ErrorDetails
	Launches []PlatformLaunch

	CreatedAt  time.Time
	QueuedAt   *time.Time
	LaunchedAt *time.Time
	UpdatedAt  time.Time
}

// ErrorDetails records the single point of failure of a pipeline run. At most
// one is attached to a campaign; a resubmit clears it.
type ErrorDetails struct {
	Step       string    `json:"step"`
	Message    string    `json:"message"`
	Platform   string    `json:"platform,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Technical  string    `json:"technical,omitempty"`
}
