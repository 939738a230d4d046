package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// PlatformResult is the per-platform outcome of a fan-out launch.
type PlatformResult struct {
	Platform string
	Success  bool
	Step     string
	Err      error
}

// launchStepError carries the failing step through the per-platform sequence.
type launchStepError struct {
	step string
	err  error
}

func (e *launchStepError) Error() string {
	return fmt.Sprintf("launch step %s: %v", e.step, e.err)
}

func (e *launchStepError) Unwrap() error { return e.err }

// Launcher drives each configured platform's campaign → ad-group → ad
// creation sequence to completion, independently per platform. One
// platform's failure never aborts another's attempt; the orchestrator
// decides the campaign-level status from the aggregate.
type Launcher struct {
	registry     *port.Registry
	repo         port.CampaignRepository
	policy       RetryPolicy
	callTimeout  time.Duration
	pollInterval time.Duration
	pollTimeout  time.Duration
	log          *slog.Logger
}

// LauncherConfig configures the fan-out launcher.
type LauncherConfig struct {
	Registry     *port.Registry
	Repo         port.CampaignRepository
	Policy       RetryPolicy
	CallTimeout  time.Duration
	PollInterval time.Duration
	PollTimeout  time.Duration
	Logger       *slog.Logger
}

// NewLauncher builds a launcher. Zero durations fall back to conservative
// defaults.
func NewLauncher(cfg LauncherConfig) *Launcher {
	l := &Launcher{
		registry:     cfg.Registry,
		repo:         cfg.Repo,
		policy:       cfg.Policy,
		callTimeout:  cfg.CallTimeout,
		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,
		log:          cfg.Logger,
	}
	if l.policy.MaxAttempts == 0 {
		l.policy = DefaultRetryPolicy()
	}
	if l.callTimeout == 0 {
		l.callTimeout = 30 * time.Second
	}
	if l.pollInterval == 0 {
		l.pollInterval = 2 * time.Second
	}
	if l.pollTimeout == 0 {
		l.pollTimeout = 2 * time.Minute
	}
	return l
}

// Launch fans out over the campaign's platform launches concurrently and
// waits for every sequence to settle. Launch records are persisted after
// each completed step, so a relaunch resumes where each platform left off.
func (l *Launcher) Launch(ctx context.Context, c *domain.Campaign) []PlatformResult {
	results := make([]PlatformResult, len(c.Launches))

	// Goroutines report through the results slice and always return nil:
	// sharing an error would cancel sibling platforms and break failure
	// isolation.
	var g errgroup.Group
	for i := range c.Launches {
		g.Go(func() error {
			launch := &c.Launches[i]
			results[i] = l.launchOne(ctx, c, launch)
			return nil
		})
	}
	g.Wait()
	return results
}

// launchOne runs a single platform's creation sequence and persists the
// launch record after every step.
func (l *Launcher) launchOne(ctx context.Context, c *domain.Campaign, launch *domain.PlatformLaunch) PlatformResult {
	res := PlatformResult{Platform: launch.Platform}

	err := l.runSequence(ctx, c, launch)
	if err == nil {
		launch.Status = domain.LaunchActive
		launch.Error = ""
		if err = l.repo.UpdatePlatformLaunch(ctx, launch); err == nil {
			res.Success = true
			return res
		}
		// The platform sequence itself succeeded; don't blame the ad step
		// for a repository write failure.
		err = &launchStepError{step: StepPersist, err: err}
	}

	var stepErr *launchStepError
	step := StepPlatformCampaign
	cause := err
	if errors.As(err, &stepErr) {
		step = stepErr.step
		cause = stepErr.err
	}

	launch.Status = domain.LaunchFailed
	launch.Error = cause.Error()
	if uerr := l.repo.UpdatePlatformLaunch(ctx, launch); uerr != nil {
		l.log.Error("failed to persist launch failure",
			slog.String("platform", launch.Platform), slog.Any("error", uerr))
	}

	res.Step = step
	res.Err = cause
	return res
}

func (l *Launcher) runSequence(ctx context.Context, c *domain.Campaign, launch *domain.PlatformLaunch) error {
	adapter, err := l.registry.Get(launch.Platform)
	if err != nil {
		return &launchStepError{step: StepPlatformCampaign, err: err}
	}

	if err := l.prepareMedia(ctx, adapter, launch); err != nil {
		return err
	}

	if launch.ExternalCampaignID == "" {
		req := port.CampaignRequest{
			Name:     c.Name,
			Type:     c.Type,
			Country:  c.Country,
			Language: c.Language,
			Budget:   launch.Budget,
			StartAt:  launch.ScheduledStart,
		}
		id, err := l.call(ctx, func(ctx context.Context) (string, error) {
			return adapter.CreateCampaign(ctx, req)
		})
		if err != nil {
			return &launchStepError{step: StepPlatformCampaign, err: err}
		}
		launch.ExternalCampaignID = id
		if err = l.repo.UpdatePlatformLaunch(ctx, launch); err != nil {
			return &launchStepError{step: StepPlatformCampaign, err: err}
		}
	}

	if launch.ExternalGroupID == "" {
		req := port.AdGroupRequest{
			CampaignID: launch.ExternalCampaignID,
			Name:       c.Name,
			Keywords:   c.Keywords,
		}
		id, err := l.call(ctx, func(ctx context.Context) (string, error) {
			return adapter.CreateAdGroup(ctx, req)
		})
		if err != nil {
			return &launchStepError{step: StepAdGroup, err: err}
		}
		launch.ExternalGroupID = id
		if err = l.repo.UpdatePlatformLaunch(ctx, launch); err != nil {
			return &launchStepError{step: StepAdGroup, err: err}
		}
	}

	if launch.ExternalAdID == "" {
		copyText := launch.AdCopy
		if copyText == "" {
			copyText = c.Message
		}
		assetIDs := make([]string, 0, len(launch.Media))
		for _, m := range launch.Media {
			if m.AssetID != "" {
				assetIDs = append(assetIDs, m.AssetID)
			}
		}
		req := port.AdRequest{
			GroupID:    launch.ExternalGroupID,
			Headline:   c.Article.Headline,
			Copy:       copyText,
			LandingURL: c.TrackingLink,
			AssetIDs:   assetIDs,
		}
		id, err := l.call(ctx, func(ctx context.Context) (string, error) {
			return adapter.CreateAd(ctx, req)
		})
		if err != nil {
			return &launchStepError{step: StepAd, err: err}
		}
		launch.ExternalAdID = id
		if err = l.repo.UpdatePlatformLaunch(ctx, launch); err != nil {
			return &launchStepError{step: StepAd, err: err}
		}
	}
	return nil
}

// prepareMedia uploads each media asset and waits until the platform reports
// it processed. The ad-creative step must not reference an asset the
// provider is still transcoding.
func (l *Launcher) prepareMedia(ctx context.Context, adapter port.AdPlatform, launch *domain.PlatformLaunch) error {
	dirty := false
	for i := range launch.Media {
		asset := &launch.Media[i]
		if asset.AssetID == "" {
			id, err := l.call(ctx, func(ctx context.Context) (string, error) {
				return adapter.UploadMedia(ctx, *asset)
			})
			if err != nil {
				return &launchStepError{step: StepMediaUpload, err: err}
			}
			asset.AssetID = id
			dirty = true
		}
		if err := l.waitMediaReady(ctx, adapter, asset.AssetID); err != nil {
			return err
		}
	}
	if dirty {
		if err := l.repo.UpdatePlatformLaunch(ctx, launch); err != nil {
			return &launchStepError{step: StepMediaUpload, err: err}
		}
	}
	return nil
}

// waitMediaReady polls the platform until the asset is processed, failing
// with step media_processing when the poll budget expires.
func (l *Launcher) waitMediaReady(ctx context.Context, adapter port.AdPlatform, assetID string) error {
	deadline := time.Now().Add(l.pollTimeout)
	for {
		var state port.MediaState
		err := providerCall(ctx, l.policy, l.callTimeout, func(ctx context.Context) error {
			var perr error
			state, perr = adapter.PollMediaReady(ctx, assetID)
			return perr
		})
		if err != nil {
			return &launchStepError{step: StepMediaProcessing, err: err}
		}

		switch state {
		case port.MediaReady:
			return nil
		case port.MediaFailed:
			return &launchStepError{step: StepMediaProcessing, err: fmt.Errorf("asset %s failed processing", assetID)}
		}

		if time.Now().After(deadline) {
			return &launchStepError{step: StepMediaProcessing, err: fmt.Errorf("asset %s not processed within %s", assetID, l.pollTimeout)}
		}
		timer := time.NewTimer(l.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return &launchStepError{step: StepMediaProcessing, err: ctx.Err()}
		case <-timer.C:
		}
	}
}

// call wraps one provider creation call with the per-call timeout and the
// retry policy.
func (l *Launcher) call(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	var id string
	err := providerCall(ctx, l.policy, l.callTimeout, func(ctx context.Context) error {
		var cerr error
		id, cerr = fn(ctx)
		return cerr
	})
	return id, err
}
