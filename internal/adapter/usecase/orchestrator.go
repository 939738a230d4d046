package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// Orchestrator composes the state machine, admission queue, content stage
// and fan-out launcher into the end-to-end launch workflow. It implements
// port.CampaignUseCase.
type Orchestrator struct {
	repo     port.CampaignRepository
	queue    *LaunchQueue
	stage    *ContentStage
	launcher *Launcher
	network  port.AffiliateNetwork
	registry *port.Registry

	policy      RetryPolicy
	callTimeout time.Duration

	allowedCountries map[string]bool
	// requeueOnEarlyFailure controls what happens when a campaign fails
	// before any external side effect: re-enter the queue at the tail
	// (default) or fail outright and wait for a manual resubmit.
	requeueOnEarlyFailure bool

	log *slog.Logger
}

// OrchestratorConfig wires the orchestrator's collaborators and policy.
type OrchestratorConfig struct {
	Repo                  port.CampaignRepository
	Queue                 *LaunchQueue
	Stage                 *ContentStage
	Launcher              *Launcher
	Network               port.AffiliateNetwork
	Registry              *port.Registry
	Policy                RetryPolicy
	CallTimeout           time.Duration
	AllowedCountries      []string
	RequeueOnEarlyFailure bool
	Logger                *slog.Logger
}

// NewOrchestrator builds the orchestrator from its configuration.
func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	allowed := make(map[string]bool, len(cfg.AllowedCountries))
	for _, c := range cfg.AllowedCountries {
		allowed[c] = true
	}
	o := &Orchestrator{
		repo:                  cfg.Repo,
		queue:                 cfg.Queue,
		stage:                 cfg.Stage,
		launcher:              cfg.Launcher,
		network:               cfg.Network,
		registry:              cfg.Registry,
		policy:                cfg.Policy,
		callTimeout:           cfg.CallTimeout,
		allowedCountries:      allowed,
		requeueOnEarlyFailure: cfg.RequeueOnEarlyFailure,
		log:                   cfg.Logger,
	}
	if o.policy.MaxAttempts == 0 {
		o.policy = DefaultRetryPolicy()
	}
	if o.callTimeout == 0 {
		o.callTimeout = 30 * time.Second
	}
	return o
}

// RestoreQueue rebuilds the admission queue from persisted state after a
// restart: queued campaigns re-enter the FIFO in enqueue order, and a
// campaign caught mid-pipeline reclaims the processing slot so the queue
// keeps its at-most-one-in-flight guarantee.
func (o *Orchestrator) RestoreQueue(ctx context.Context) error {
	queued, err := o.repo.ListQueued(ctx)
	if err != nil {
		return fmt.Errorf("restore queue: %w", err)
	}
	entries := make([]domain.QueueEntry, 0, len(queued))
	for _, c := range queued {
		at := c.CreatedAt
		if c.QueuedAt != nil {
			at = *c.QueuedAt
		}
		entries = append(entries, domain.QueueEntry{CampaignID: c.ID, EnqueuedAt: at})
	}
	o.queue.Rebuild(entries)

	all, err := o.repo.ListCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("restore queue: %w", err)
	}
	for _, c := range all {
		if c.Status.Processing() {
			o.queue.MarkBusy(c.ID)
			o.log.Warn("campaign restored mid-pipeline, holding processing slot",
				slog.String("campaign", c.ID.String()), slog.String("status", string(c.Status)))
			break
		}
	}
	return nil
}

// SubmitCampaign validates the request synchronously, persists the campaign
// and enqueues it. A validation failure is returned to the caller and the
// campaign never reaches QUEUED.
func (o *Orchestrator) SubmitCampaign(ctx context.Context, req port.SubmitCampaignRequest) (*port.SubmitCampaignResponse, error) {
	if err := o.validateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &domain.Campaign{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		Country:     req.Country,
		Language:    req.Language,
		Message:     req.Message,
		Keywords:    req.Keywords,
		Article:     req.Article,
		NeedsDesign: req.NeedsDesign,
		Status:      domain.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, p := range req.Platforms {
		c.Launches = append(c.Launches, domain.PlatformLaunch{
			ID:             uuid.New(),
			CampaignID:     c.ID,
			Platform:       p.Platform,
			Budget:         p.Budget,
			ScheduledStart: p.ScheduledStart,
			GenerateWithAI: p.GenerateWithAI,
			Status:         domain.LaunchPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if err := o.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	entry, err := o.enqueue(ctx, c)
	if err != nil {
		return nil, err
	}

	o.log.Info("campaign submitted",
		slog.String("campaign", c.ID.String()),
		slog.Int("queue_position", entry.Position))
	return &port.SubmitCampaignResponse{
		CampaignID:    c.ID,
		Status:        domain.StatusQueued,
		QueuePosition: entry.Position,
	}, nil
}

// AdvanceQueue is driven by the external periodic trigger. It admits the
// head campaign when the processing slot is free and runs its pipeline to a
// settled state.
func (o *Orchestrator) AdvanceQueue(ctx context.Context) (*uuid.UUID, error) {
	id, ok := o.queue.Advance()
	if !ok {
		return nil, nil
	}
	if err := o.start(ctx, id); err != nil {
		return &id, err
	}
	return &id, nil
}

// GetCampaign returns the campaign projection.
func (o *Orchestrator) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return o.repo.GetCampaign(ctx, id)
}

// ListCampaigns returns all campaign projections.
func (o *Orchestrator) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return o.repo.ListCampaigns(ctx)
}

// Withdraw removes a queued campaign from the FIFO without side effects.
func (o *Orchestrator) Withdraw(ctx context.Context, id uuid.UUID) error {
	c, err := o.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	next, err := domain.Transition(c, domain.EventWithdraw)
	if err != nil {
		return err
	}
	o.queue.Withdraw(id)
	return o.repo.UpdateStatus(ctx, id, next)
}

// Resubmit re-enqueues a failed or draft campaign after the user corrected
// its configuration, clearing the attached error details.
func (o *Orchestrator) Resubmit(ctx context.Context, id uuid.UUID) (*port.SubmitCampaignResponse, error) {
	c, err := o.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Error != nil {
		if err = o.repo.SaveErrorDetails(ctx, id, nil); err != nil {
			return nil, err
		}
		c.Error = nil
	}
	// A relaunch retries failed platforms from scratch while keeping the
	// identifiers of the ones that succeeded.
	for i := range c.Launches {
		if c.Launches[i].Status == domain.LaunchFailed {
			c.Launches[i].Status = domain.LaunchPending
			c.Launches[i].Error = ""
			if err = o.repo.UpdatePlatformLaunch(ctx, &c.Launches[i]); err != nil {
				return nil, err
			}
		}
	}
	entry, err := o.enqueue(ctx, c)
	if err != nil {
		return nil, err
	}
	return &port.SubmitCampaignResponse{
		CampaignID:    c.ID,
		Status:        domain.StatusQueued,
		QueuePosition: entry.Position,
	}, nil
}

// MarkDesignComplete resumes a campaign parked in AWAITING_DESIGN. The
// content guard re-runs on the transition, so a campaign whose artifacts
// went missing stays parked with a precondition error.
func (o *Orchestrator) MarkDesignComplete(ctx context.Context, id uuid.UUID) error {
	c, err := o.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	next, err := domain.Transition(c, domain.EventDesignComplete)
	if err != nil {
		return err
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		return err
	}
	o.launch(ctx, c)
	return nil
}

// ResolveArticleApproval polls the affiliate network for the campaign's
// pending article request and resumes the pipeline on approval.
func (o *Orchestrator) ResolveArticleApproval(ctx context.Context, id uuid.UUID) (domain.Status, error) {
	c, err := o.repo.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}
	if c.Status != domain.StatusAwaitingApproval {
		return "", &domain.InvalidTransitionError{From: c.Status, Event: domain.EventArticleApproved}
	}

	var res port.ArticleResult
	err = providerCall(ctx, o.policy, o.callTimeout, func(ctx context.Context) error {
		var cerr error
		res, cerr = o.network.PollArticleApproval(ctx, c.ArticleRequestID)
		return cerr
	})
	if err != nil {
		o.fail(ctx, c, StepArticle, "", err)
		return domain.StatusFailed, nil
	}

	switch res.Decision {
	case port.ArticlePending:
		return c.Status, nil
	case port.ArticleRejected:
		// The network's own reason is usually the most actionable
		// diagnostic, so it is surfaced verbatim.
		o.fail(ctx, c, StepArticle, "", fmt.Errorf("article rejected by affiliate network: %s", res.Reason))
		return domain.StatusFailed, nil
	}

	next, err := domain.Transition(c, domain.EventArticleApproved)
	if err != nil {
		return "", err
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		return "", err
	}
	o.runContentAndLaunch(ctx, c)
	return c.Status, nil
}

// start runs the launch pipeline for a freshly dequeued campaign. Any error
// before the first external side effect is an early failure handled per the
// requeue policy; everything after is captured into ErrorDetails.
func (o *Orchestrator) start(ctx context.Context, id uuid.UUID) error {
	c, err := o.repo.GetCampaign(ctx, id)
	if err != nil {
		// Infrastructure failure before anything happened: put the
		// campaign back instead of dropping it from the FIFO.
		o.queue.Requeue(id)
		return err
	}

	next, err := domain.Transition(c, domain.EventStart)
	if err != nil {
		o.queue.Release(id)
		return err
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		o.queue.Requeue(id)
		return err
	}

	if err = o.validateCampaign(c); err != nil {
		o.earlyFailure(ctx, c, err)
		return nil
	}

	// First external side effect: the affiliate campaign that produces
	// the tracking link everything downstream points at.
	if c.AffiliateCampaignID == "" {
		var externalID, link string
		err = providerCall(ctx, o.policy, o.callTimeout, func(ctx context.Context) error {
			var cerr error
			externalID, link, cerr = o.network.CreateCampaign(ctx, c)
			return cerr
		})
		if err != nil {
			o.fail(ctx, c, StepAffiliateCampaign, "", err)
			return nil
		}
		c.AffiliateCampaignID = externalID
		c.TrackingLink = link
		if err = o.repo.SaveContent(ctx, c); err != nil {
			o.fail(ctx, c, StepAffiliateCampaign, "", err)
			return nil
		}
	}

	next, err = domain.Transition(c, domain.EventValidated)
	if err != nil {
		o.fail(ctx, c, StepValidate, "", err)
		return nil
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		o.fail(ctx, c, StepValidate, "", err)
		return nil
	}

	o.runContentAndLaunch(ctx, c)
	return nil
}

// runContentAndLaunch drives the campaign from GENERATING_CONTENT to a
// settled state: parked (approval/design), ACTIVE or FAILED.
func (o *Orchestrator) runContentAndLaunch(ctx context.Context, c *domain.Campaign) {
	pending, err := o.stage.Generate(ctx, c)
	if err != nil {
		step, platform := StepMessage, ""
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			step, platform = genErr.Step, genErr.Platform
		}
		o.fail(ctx, c, step, platform, err)
		return
	}
	if pending {
		next, terr := domain.Transition(c, domain.EventArticlePending)
		if terr != nil {
			o.fail(ctx, c, StepArticle, "", terr)
			return
		}
		if terr = o.setStatus(ctx, c, next); terr != nil {
			o.fail(ctx, c, StepArticle, "", terr)
			return
		}
		o.log.Info("campaign awaiting article approval", slog.String("campaign", c.ID.String()))
		return
	}

	if c.NeedsDesign {
		next, terr := domain.Transition(c, domain.EventDesignRequired)
		if terr != nil {
			o.fail(ctx, c, StepMedia, "", terr)
			return
		}
		if terr = o.setStatus(ctx, c, next); terr != nil {
			o.fail(ctx, c, StepMedia, "", terr)
			return
		}
		o.log.Info("campaign awaiting external design", slog.String("campaign", c.ID.String()))
		return
	}

	next, err := domain.Transition(c, domain.EventContentReady)
	if err != nil {
		o.fail(ctx, c, StepMedia, "", err)
		return
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		o.fail(ctx, c, StepMedia, "", err)
		return
	}

	o.launch(ctx, c)
}

// launch fans out to the platforms and settles the campaign-level status:
// ACTIVE only when every platform launch is ACTIVE, FAILED otherwise with
// the first per-platform failure captured.
func (o *Orchestrator) launch(ctx context.Context, c *domain.Campaign) {
	next, err := domain.Transition(c, domain.EventLaunch)
	if err != nil {
		o.fail(ctx, c, StepPlatformCampaign, "", err)
		return
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		o.fail(ctx, c, StepPlatformCampaign, "", err)
		return
	}

	results := o.launcher.Launch(ctx, c)
	for _, r := range results {
		if !r.Success {
			o.fail(ctx, c, r.Step, r.Platform, r.Err)
			return
		}
	}

	next, err = domain.Transition(c, domain.EventLaunched)
	if err != nil {
		o.fail(ctx, c, StepAd, "", err)
		return
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		o.fail(ctx, c, StepAd, "", err)
		return
	}
	o.queue.Release(c.ID)
	o.log.Info("campaign active", slog.String("campaign", c.ID.String()))
}

// earlyFailure handles a failure before any external side effect occurred.
// Per policy the campaign either re-enters the queue at the tail or fails
// outright.
func (o *Orchestrator) earlyFailure(ctx context.Context, c *domain.Campaign, cause error) {
	if !o.requeueOnEarlyFailure {
		o.fail(ctx, c, StepValidate, "", cause)
		return
	}

	next, err := domain.Transition(c, domain.EventRequeue)
	if err != nil {
		o.fail(ctx, c, StepValidate, "", cause)
		return
	}
	if err = o.repo.UpdateStatus(ctx, c.ID, next); err != nil {
		o.fail(ctx, c, StepValidate, "", err)
		return
	}
	c.Status = next
	entry := o.queue.Requeue(c.ID)
	o.log.Warn("campaign re-queued after early failure",
		slog.String("campaign", c.ID.String()),
		slog.Int("queue_position", entry.Position),
		slog.Any("error", cause))
}

// fail captures error details at the single point of failure, transitions
// the campaign to FAILED and frees the processing slot.
func (o *Orchestrator) fail(ctx context.Context, c *domain.Campaign, step, platform string, cause error) {
	defer o.queue.Release(c.ID)

	details := &domain.ErrorDetails{
		Step:       step,
		Message:    userMessage(step, platform),
		Platform:   platform,
		OccurredAt: time.Now(),
		Technical:  cause.Error(),
	}

	next, err := domain.Transition(c, domain.EventFail)
	if err != nil {
		o.log.Error("cannot transition to failed",
			slog.String("campaign", c.ID.String()), slog.Any("error", err))
		return
	}
	if err = o.repo.SaveErrorDetails(ctx, c.ID, details); err != nil {
		o.log.Error("failed to persist error details",
			slog.String("campaign", c.ID.String()), slog.Any("error", err))
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		o.log.Error("failed to persist failed status",
			slog.String("campaign", c.ID.String()), slog.Any("error", err))
	}
	c.Error = details

	o.log.Error("campaign failed",
		slog.String("campaign", c.ID.String()),
		slog.String("step", step),
		slog.String("platform", platform),
		slog.Any("error", cause))
}

func (o *Orchestrator) enqueue(ctx context.Context, c *domain.Campaign) (domain.QueueEntry, error) {
	next, err := domain.Transition(c, domain.EventEnqueue)
	if err != nil {
		return domain.QueueEntry{}, err
	}
	if err = o.setStatus(ctx, c, next); err != nil {
		return domain.QueueEntry{}, err
	}
	return o.queue.Enqueue(c.ID), nil
}

func (o *Orchestrator) setStatus(ctx context.Context, c *domain.Campaign, next domain.Status) error {
	if err := o.repo.UpdateStatus(ctx, c.ID, next); err != nil {
		return err
	}
	c.Status = next
	return nil
}

// validateRequest checks caller input before anything is persisted.
func (o *Orchestrator) validateRequest(req port.SubmitCampaignRequest) error {
	if req.Name == "" {
		return &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	switch req.Type {
	case domain.CampaignTypeConversions, domain.CampaignTypeTraffic, domain.CampaignTypeLeads:
	default:
		return &port.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown campaign type %q", req.Type)}
	}
	if !o.allowedCountries[req.Country] {
		return &port.ValidationError{Field: "country", Reason: fmt.Sprintf("%q is not on the allow-list", req.Country)}
	}
	if req.Language == "" {
		return &port.ValidationError{Field: "language", Reason: "must not be empty"}
	}
	if len(req.Platforms) == 0 {
		return &port.ValidationError{Field: "platforms", Reason: "at least one platform is required"}
	}
	for _, p := range req.Platforms {
		if _, err := o.registry.Get(p.Platform); err != nil {
			return &port.ValidationError{Field: "platforms", Reason: fmt.Sprintf("unknown platform %q", p.Platform)}
		}
		if p.Budget <= 0 {
			return &port.ValidationError{Field: "platforms", Reason: fmt.Sprintf("budget for %s must be positive", p.Platform)}
		}
	}
	return nil
}

// validateCampaign re-checks the persisted campaign at the start of the
// pipeline. The allow-list can change between submission and launch.
func (o *Orchestrator) validateCampaign(c *domain.Campaign) error {
	if !o.allowedCountries[c.Country] {
		return &port.ValidationError{Field: "country", Reason: fmt.Sprintf("%q is not on the allow-list", c.Country)}
	}
	if len(c.Launches) == 0 {
		return &port.ValidationError{Field: "platforms", Reason: "campaign has no platform launches"}
	}
	return nil
}

// userMessage maps a step name to the plain-language message shown next to
// the technical payload.
func userMessage(step, platform string) string {
	var msg string
	switch step {
	case StepValidate:
		msg = "Campaign configuration is invalid"
	case StepAffiliateCampaign:
		msg = "Could not create the campaign on the affiliate network"
	case StepMessage:
		msg = "Could not generate the campaign message"
	case StepKeywords:
		msg = "Could not produce or submit the keyword set"
	case StepArticle:
		msg = "Article generation or approval failed"
	case StepAdCopy:
		msg = "Could not generate platform ad copy"
	case StepMedia:
		msg = "Could not generate media"
	case StepMediaUpload:
		msg = "Media upload failed"
	case StepMediaProcessing:
		msg = "Media was not processed in time"
	case StepPlatformCampaign:
		msg = "Could not create the campaign on the ad platform"
	case StepAdGroup:
		msg = "Could not create the ad group"
	case StepAd:
		msg = "Could not create the ad"
	case StepPersist:
		msg = "The launch succeeded but its state could not be saved"
	default:
		msg = "Campaign launch failed"
	}
	if platform != "" {
		msg += " (" + platform + ")"
	}
	return msg
}
