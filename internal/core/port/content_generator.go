package port

import (
	"context"

	"launchpro/internal/core/domain"
)

// CampaignBrief is the offer metadata the generator works from. It is
// derived from the campaign and carries no campaign state.
type CampaignBrief struct {
	Name     string
	Type     domain.CampaignType
	Country  string
	Language string
}

// MediaSpec describes the media artifact to generate, sized per the target
// platform's aspect-ratio convention.
type MediaSpec struct {
	Platform    string
	Kind        domain.MediaKind
	AspectRatio string
	Prompt      string
}

// ContentGenerator produces campaign artifacts on demand. Calls are pure
// request/response and never touch campaign state; the content stage decides
// which calls to make and in what order.
type ContentGenerator interface {
	// GenerateCopy produces the campaign message from the brief alone.
	GenerateCopy(ctx context.Context, brief CampaignBrief) (string, error)
	// GenerateKeywords produces the keyword set from the brief and message.
	GenerateKeywords(ctx context.Context, brief CampaignBrief, message string) ([]string, error)
	// GenerateArticle produces the article submitted for approval.
	GenerateArticle(ctx context.Context, brief CampaignBrief, message string, keywords []string) (domain.Article, error)
	// GenerateAdCopy produces platform-specific ad copy.
	GenerateAdCopy(ctx context.Context, brief CampaignBrief, platform, message string) (string, error)
	// GenerateImage produces an image asset per the spec.
	GenerateImage(ctx context.Context, brief CampaignBrief, spec MediaSpec) (domain.MediaAsset, error)
	// GenerateVideo produces a video asset per the spec.
	GenerateVideo(ctx context.Context, brief CampaignBrief, spec MediaSpec) (domain.MediaAsset, error)
}
