package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// Pipeline step names recorded in ErrorDetails when a stage fails.
const (
	StepValidate          = "validate"
	StepAffiliateCampaign = "affiliate_campaign"
	StepMessage           = "message"
	StepKeywords          = "keywords"
	StepArticle           = "article"
	StepAdCopy            = "ad_copy"
	StepMedia             = "media"
	StepMediaUpload       = "media_upload"
	StepMediaProcessing   = "media_processing"
	StepPlatformCampaign  = "platform_campaign"
	StepAdGroup           = "ad_group"
	StepAd                = "ad"
	StepPersist           = "persist"
)

// GenerationError wraps a content stage failure with the step that produced
// it and, for per-platform steps, the offending platform.
type GenerationError struct {
	Step     string
	Platform string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Platform != "" {
		return fmt.Sprintf("generation step %s (%s): %v", e.Step, e.Platform, e.Err)
	}
	return fmt.Sprintf("generation step %s: %v", e.Step, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// mediaConvention is the aspect-ratio and artifact convention per platform.
// Platforms not listed fall back to a single 1:1 image.
var mediaConvention = map[string]struct {
	aspectRatio string
	wantVideo   bool
}{
	"meta":   {aspectRatio: "1:1"},
	"google": {aspectRatio: "1.91:1"},
	"tiktok": {aspectRatio: "9:16", wantVideo: true},
}

// ContentStage produces the campaign's content bundle, skipping any field the
// user supplied. Every completed sub-step is persisted before the next one
// starts, so a retry resumes from the first missing artifact instead of
// regenerating everything.
type ContentStage struct {
	repo    port.CampaignRepository
	gen     port.ContentGenerator
	network port.AffiliateNetwork

	policy       RetryPolicy
	callTimeout  time.Duration
	mediaTimeout time.Duration

	log *slog.Logger
}

// ContentStageConfig configures the content stage. MediaTimeout bounds the
// long-running image and video generation calls separately from the text and
// network calls.
type ContentStageConfig struct {
	Repo         port.CampaignRepository
	Generator    port.ContentGenerator
	Network      port.AffiliateNetwork
	Policy       RetryPolicy
	CallTimeout  time.Duration
	MediaTimeout time.Duration
	Logger       *slog.Logger
}

// NewContentStage wires the stage with its collaborators. Zero durations fall
// back to conservative defaults.
func NewContentStage(cfg ContentStageConfig) *ContentStage {
	s := &ContentStage{
		repo:         cfg.Repo,
		gen:          cfg.Generator,
		network:      cfg.Network,
		policy:       cfg.Policy,
		callTimeout:  cfg.CallTimeout,
		mediaTimeout: cfg.MediaTimeout,
		log:          cfg.Logger,
	}
	if s.policy.MaxAttempts == 0 {
		s.policy = DefaultRetryPolicy()
	}
	if s.callTimeout == 0 {
		s.callTimeout = 30 * time.Second
	}
	if s.mediaTimeout == 0 {
		s.mediaTimeout = 5 * time.Minute
	}
	return s
}

func (s *ContentStage) call(ctx context.Context, fn func(context.Context) error) error {
	return providerCall(ctx, s.policy, s.callTimeout, fn)
}

// Generate runs the content sequence for the campaign, mutating it in place.
// Ordering matters: keywords depend on the message, the article depends on
// both, platform artifacts depend on all of the above. It returns
// pendingApproval=true when the article was submitted but the affiliate
// network did not approve it synchronously; the campaign must then park in
// AWAITING_ARTICLE_APPROVAL until a poll reports a decision.
//
// Any sub-step failure is wrapped in a *GenerationError naming the step and
// returned without continuing.
func (s *ContentStage) Generate(ctx context.Context, c *domain.Campaign) (pendingApproval bool, err error) {
	brief := port.CampaignBrief{
		Name:     c.Name,
		Type:     c.Type,
		Country:  c.Country,
		Language: c.Language,
	}

	if c.Message == "" {
		err = s.call(ctx, func(ctx context.Context) error {
			var cerr error
			c.Message, cerr = s.gen.GenerateCopy(ctx, brief)
			return cerr
		})
		if err != nil {
			return false, &GenerationError{Step: StepMessage, Err: err}
		}
		if err = s.repo.SaveContent(ctx, c); err != nil {
			return false, &GenerationError{Step: StepMessage, Err: err}
		}
		s.log.Info("generated campaign message", slog.String("campaign", c.ID.String()))
	}

	if len(c.Keywords) == 0 {
		err = s.call(ctx, func(ctx context.Context) error {
			var cerr error
			c.Keywords, cerr = s.gen.GenerateKeywords(ctx, brief, c.Message)
			return cerr
		})
		if err != nil {
			return false, &GenerationError{Step: StepKeywords, Err: err}
		}
		if err = s.repo.SaveContent(ctx, c); err != nil {
			return false, &GenerationError{Step: StepKeywords, Err: err}
		}
	}

	// The keyword set reaches the network exactly once, whether the user
	// authored it or the generator did.
	if !c.KeywordsSubmitted {
		if err = s.call(ctx, func(ctx context.Context) error {
			return s.network.SetKeywords(ctx, c.AffiliateCampaignID, c.Keywords)
		}); err != nil {
			return false, &GenerationError{Step: StepKeywords, Err: err}
		}
		c.KeywordsSubmitted = true
		if err = s.repo.SaveContent(ctx, c); err != nil {
			return false, &GenerationError{Step: StepKeywords, Err: err}
		}
	}

	// Once the article exists the approval request is behind us, so it is
	// skipped on re-invocation.
	if c.Article.Empty() {
		err = s.call(ctx, func(ctx context.Context) error {
			var cerr error
			c.Article, cerr = s.gen.GenerateArticle(ctx, brief, c.Message, c.Keywords)
			return cerr
		})
		if err != nil {
			return false, &GenerationError{Step: StepArticle, Err: err}
		}

		var res port.ArticleResult
		err = s.call(ctx, func(ctx context.Context) error {
			var cerr error
			res, cerr = s.network.SubmitArticle(ctx, c.AffiliateCampaignID, c.Article)
			return cerr
		})
		if err != nil {
			return false, &GenerationError{Step: StepArticle, Err: err}
		}
		c.ArticleRequestID = res.RequestID
		if err = s.repo.SaveContent(ctx, c); err != nil {
			return false, &GenerationError{Step: StepArticle, Err: err}
		}

		switch res.Decision {
		case port.ArticleApproved:
		case port.ArticlePending:
			return true, nil
		case port.ArticleRejected:
			return false, &GenerationError{Step: StepArticle, Err: fmt.Errorf("article rejected by affiliate network: %s", res.Reason)}
		default:
			return false, &GenerationError{Step: StepArticle, Err: fmt.Errorf("unexpected article decision %q", res.Decision)}
		}
	}

	for i := range c.Launches {
		l := &c.Launches[i]
		if !l.GenerateWithAI {
			continue
		}
		if err = s.generatePlatformArtifacts(ctx, brief, l); err != nil {
			return false, err
		}
	}
	return false, nil
}

// generatePlatformArtifacts produces the ad copy and media for one launch,
// persisting the launch when done.
func (s *ContentStage) generatePlatformArtifacts(ctx context.Context, brief port.CampaignBrief, l *domain.PlatformLaunch) error {
	dirty := false

	if l.AdCopy == "" {
		err := s.call(ctx, func(ctx context.Context) error {
			var cerr error
			l.AdCopy, cerr = s.gen.GenerateAdCopy(ctx, brief, l.Platform, brief.Name)
			return cerr
		})
		if err != nil {
			return &GenerationError{Step: StepAdCopy, Platform: l.Platform, Err: err}
		}
		dirty = true
	}

	if len(l.Media) == 0 {
		conv, ok := mediaConvention[l.Platform]
		if !ok {
			conv.aspectRatio = "1:1"
		}
		spec := port.MediaSpec{
			Platform:    l.Platform,
			Kind:        domain.MediaImage,
			AspectRatio: conv.aspectRatio,
			Prompt:      l.AdCopy,
		}
		var img domain.MediaAsset
		err := providerCall(ctx, s.policy, s.mediaTimeout, func(ctx context.Context) error {
			var cerr error
			img, cerr = s.gen.GenerateImage(ctx, brief, spec)
			return cerr
		})
		if err != nil {
			return &GenerationError{Step: StepMedia, Platform: l.Platform, Err: err}
		}
		l.Media = append(l.Media, img)

		if conv.wantVideo {
			spec.Kind = domain.MediaVideo
			var vid domain.MediaAsset
			err = providerCall(ctx, s.policy, s.mediaTimeout, func(ctx context.Context) error {
				var cerr error
				vid, cerr = s.gen.GenerateVideo(ctx, brief, spec)
				return cerr
			})
			if err != nil {
				return &GenerationError{Step: StepMedia, Platform: l.Platform, Err: err}
			}
			l.Media = append(l.Media, vid)
		}
		dirty = true
	}

	if dirty {
		if err := s.repo.UpdatePlatformLaunch(ctx, l); err != nil {
			return &GenerationError{Step: StepMedia, Platform: l.Platform, Err: err}
		}
	}
	return nil
}
