package port

import (
	"context"
	"time"

	"launchpro/internal/core/domain"
)

// ArticleDecision is the affiliate network's verdict on a submitted article.
type ArticleDecision string

const (
	ArticleApproved ArticleDecision = "approved"
	ArticlePending  ArticleDecision = "pending"
	ArticleRejected ArticleDecision = "rejected"
)

// ArticleResult is returned by article submission and approval polling.
// Reason carries the network's own message on rejection.
type ArticleResult struct {
	RequestID string
	Decision  ArticleDecision
	Reason    string
}

// AffiliateNetwork is the content/affiliate side of the launch: it hosts the
// campaign's article and produces the monetized tracking link ads point at.
type AffiliateNetwork interface {
	// CreateCampaign registers the campaign and returns the network's
	// identifier plus the tracking link.
	CreateCampaign(ctx context.Context, c *domain.Campaign) (externalID, trackingLink string, err error)
	// SetKeywords attaches the keyword set to an existing network campaign.
	SetKeywords(ctx context.Context, externalID string, keywords []string) error
	// SubmitArticle submits the article for approval. The decision may be
	// ArticleApproved synchronously or ArticlePending for later polling.
	SubmitArticle(ctx context.Context, externalID string, article domain.Article) (ArticleResult, error)
	// PollArticleApproval checks the decision for a pending request.
	PollArticleApproval(ctx context.Context, requestID string) (ArticleResult, error)
}

// MediaState is the processing state of an uploaded media asset.
type MediaState string

const (
	MediaReady      MediaState = "ready"
	MediaProcessing MediaState = "processing"
	MediaFailed     MediaState = "failed"
)

// CampaignRequest holds the fields every platform needs to create the
// top-level campaign object.
type CampaignRequest struct {
	Name     string
	Type     domain.CampaignType
	Country  string
	Language string
	Budget   int64
	StartAt  time.Time
}

// AdGroupRequest creates the second tier of the platform hierarchy under an
// existing platform campaign.
type AdGroupRequest struct {
	CampaignID string
	Name       string
	Keywords   []string
}

// AdRequest creates the ad itself. AssetIDs reference media previously
// uploaded and confirmed processed on the platform.
type AdRequest struct {
	GroupID    string
	Headline   string
	Copy       string
	LandingURL string
	AssetIDs   []string
}

// AdPlatform is the uniform capability interface over one external ad
// platform's campaign → ad-group → ad creation hierarchy. Implementations
// raise *ProviderError with an HTTP-status-like classification.
type AdPlatform interface {
	// Name returns the registry key for this platform.
	Name() string
	CreateCampaign(ctx context.Context, req CampaignRequest) (string, error)
	CreateAdGroup(ctx context.Context, req AdGroupRequest) (string, error)
	CreateAd(ctx context.Context, req AdRequest) (string, error)
	// UploadMedia pushes an asset to the platform and returns its id. The
	// asset may still be processing; poll with PollMediaReady before
	// referencing it from an ad.
	UploadMedia(ctx context.Context, asset domain.MediaAsset) (string, error)
	PollMediaReady(ctx context.Context, assetID string) (MediaState, error)
}

// Registry selects the adapter for a platform identifier. Adapters are
// registered once at startup; lookups afterwards are read-only.
type Registry struct {
	adapters map[string]AdPlatform
}

// NewRegistry returns an empty platform registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]AdPlatform)}
}

// Register adds an adapter under its own name, replacing any previous entry.
func (r *Registry) Register(p AdPlatform) {
	r.adapters[p.Name()] = p
}

// Get returns the adapter for the platform, or ErrUnknownPlatform.
func (r *Registry) Get(platform string) (AdPlatform, error) {
	p, ok := r.adapters[platform]
	if !ok {
		return nil, ErrUnknownPlatform
	}
	return p, nil
}

// Platforms lists the registered platform identifiers.
func (r *Registry) Platforms() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}
