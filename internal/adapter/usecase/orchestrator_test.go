package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"launchpro/internal/adapter/sandbox"
	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
	"launchpro/internal/core/port/mocks"
)

// memRepo is an in-memory CampaignRepository for pipeline tests. It hands
// out copies the way a real repository would, so mutations only become
// visible once written back.
type memRepo struct {
	mu        sync.Mutex
	order     []uuid.UUID
	campaigns map[uuid.UUID]*domain.Campaign
}

func newMemRepo() *memRepo {
	return &memRepo{campaigns: make(map[uuid.UUID]*domain.Campaign)}
}

func cloneCampaign(c *domain.Campaign) *domain.Campaign {
	cp := *c
	cp.Keywords = append([]string(nil), c.Keywords...)
	cp.Launches = make([]domain.PlatformLaunch, len(c.Launches))
	for i, l := range c.Launches {
		l.Media = append([]domain.MediaAsset(nil), l.Media...)
		cp.Launches[i] = l
	}
	if c.Error != nil {
		e := *c.Error
		cp.Error = &e
	}
	return &cp
}

func (r *memRepo) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.ID] = cloneCampaign(c)
	r.order = append(r.order, c.ID)
	return nil
}

func (r *memRepo) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return cloneCampaign(c), nil
}

func (r *memRepo) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Campaign, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *cloneCampaign(r.campaigns[r.order[i]]))
	}
	return out, nil
}

func (r *memRepo) ListQueued(ctx context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Campaign, 0)
	for _, id := range r.order {
		if c := r.campaigns[id]; c.Status == domain.StatusQueued {
			out = append(out, *cloneCampaign(c))
		}
	}
	return out, nil
}

func (r *memRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return port.ErrCampaignNotFound
	}
	c.Status = status
	now := time.Now()
	switch status {
	case domain.StatusQueued:
		c.QueuedAt = &now
	case domain.StatusActive:
		c.LaunchedAt = &now
	}
	return nil
}

func (r *memRepo) SaveContent(ctx context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.campaigns[c.ID]
	if !ok {
		return port.ErrCampaignNotFound
	}
	stored.Message = c.Message
	stored.Keywords = append([]string(nil), c.Keywords...)
	stored.Article = c.Article
	stored.AffiliateCampaignID = c.AffiliateCampaignID
	stored.TrackingLink = c.TrackingLink
	stored.ArticleRequestID = c.ArticleRequestID
	stored.KeywordsSubmitted = c.KeywordsSubmitted
	return nil
}

func (r *memRepo) SaveErrorDetails(ctx context.Context, id uuid.UUID, details *domain.ErrorDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return port.ErrCampaignNotFound
	}
	if details == nil {
		c.Error = nil
		return nil
	}
	d := *details
	c.Error = &d
	return nil
}

func (r *memRepo) UpdatePlatformLaunch(ctx context.Context, l *domain.PlatformLaunch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.campaigns {
		for i := range c.Launches {
			if c.Launches[i].ID == l.ID {
				upd := *l
				upd.Media = append([]domain.MediaAsset(nil), l.Media...)
				c.Launches[i] = upd
				return nil
			}
		}
	}
	return port.ErrCampaignNotFound
}

// pipeline bundles a fully wired orchestrator over sandbox adapters.
type pipeline struct {
	repo    *memRepo
	network *sandbox.Network
	meta    *sandbox.Platform
	google  *sandbox.Platform
	svc     *Orchestrator
}

func newPipeline(t *testing.T, gen port.ContentGenerator) *pipeline {
	t.Helper()
	p := &pipeline{
		repo:    newMemRepo(),
		network: sandbox.NewNetwork(),
		meta:    sandbox.NewPlatform("meta"),
		google:  sandbox.NewPlatform("google"),
	}
	if gen == nil {
		gen = sandbox.NewGenerator()
	}
	registry := port.NewRegistry()
	registry.Register(p.meta)
	registry.Register(p.google)

	queue := NewLaunchQueue()
	logger := discardLogger()
	stage := NewContentStage(ContentStageConfig{
		Repo:         p.repo,
		Generator:    gen,
		Network:      p.network,
		Policy:       fastPolicy(),
		CallTimeout:  time.Second,
		MediaTimeout: time.Second,
		Logger:       logger,
	})
	launcher := NewLauncher(LauncherConfig{
		Registry:     registry,
		Repo:         p.repo,
		Policy:       fastPolicy(),
		CallTimeout:  time.Second,
		PollInterval: time.Millisecond,
		PollTimeout:  time.Second,
		Logger:       logger,
	})
	p.svc = NewOrchestrator(OrchestratorConfig{
		Repo:                  p.repo,
		Queue:                 queue,
		Stage:                 stage,
		Launcher:              launcher,
		Network:               p.network,
		Registry:              registry,
		Policy:                fastPolicy(),
		CallTimeout:           time.Second,
		AllowedCountries:      []string{"US", "GB", "DE"},
		RequeueOnEarlyFailure: true,
		Logger:                logger,
	})
	return p
}

func submitReq() port.SubmitCampaignRequest {
	return port.SubmitCampaignRequest{
		Name:     "Keto Gummies",
		Type:     domain.CampaignTypeConversions,
		Country:  "US",
		Language: "en",
		Platforms: []port.PlatformSpec{
			{Platform: "meta", Budget: 5000, ScheduledStart: time.Now().Add(24 * time.Hour), GenerateWithAI: true},
			{Platform: "google", Budget: 3000, ScheduledStart: time.Now().Add(24 * time.Hour), GenerateWithAI: true},
		},
	}
}

func TestSubmitRejectsBeforePersisting(t *testing.T) {
	p := newPipeline(t, nil)

	cases := []struct {
		name  string
		field string
		mut   func(*port.SubmitCampaignRequest)
	}{
		{"empty name", "name", func(r *port.SubmitCampaignRequest) { r.Name = "" }},
		{"unknown type", "type", func(r *port.SubmitCampaignRequest) { r.Type = "awareness" }},
		{"country off allow-list", "country", func(r *port.SubmitCampaignRequest) { r.Country = "KP" }},
		{"no platforms", "platforms", func(r *port.SubmitCampaignRequest) { r.Platforms = nil }},
		{"unknown platform", "platforms", func(r *port.SubmitCampaignRequest) { r.Platforms[0].Platform = "myspace" }},
		{"zero budget", "platforms", func(r *port.SubmitCampaignRequest) { r.Platforms[0].Budget = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := submitReq()
			tc.mut(&req)
			_, err := p.svc.SubmitCampaign(context.Background(), req)
			var vErr *port.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}

	all, _ := p.repo.ListCampaigns(context.Background())
	if len(all) != 0 {
		t.Fatalf("rejected submissions were persisted: %d campaigns", len(all))
	}
}

func TestEndToEndLaunch(t *testing.T) {
	p := newPipeline(t, nil)
	ctx := context.Background()

	resp, err := p.svc.SubmitCampaign(ctx, submitReq())
	if err != nil {
		t.Fatalf("SubmitCampaign error: %v", err)
	}
	if resp.Status != domain.StatusQueued || resp.QueuePosition != 1 {
		t.Fatalf("unexpected submit response: %+v", resp)
	}

	id, err := p.svc.AdvanceQueue(ctx)
	if err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}
	if id == nil || *id != resp.CampaignID {
		t.Fatalf("expected %s to be processed, got %v", resp.CampaignID, id)
	}

	c, err := p.svc.GetCampaign(ctx, resp.CampaignID)
	if err != nil {
		t.Fatalf("GetCampaign error: %v", err)
	}
	if c.Status != domain.StatusActive {
		t.Fatalf("expected active campaign, got %s (error: %+v)", c.Status, c.Error)
	}
	if c.TrackingLink == "" || c.AffiliateCampaignID == "" {
		t.Fatalf("affiliate setup missing: %+v", c)
	}
	if c.Message == "" || len(c.Keywords) == 0 || c.Article.Empty() {
		t.Fatal("generated content missing")
	}
	if c.LaunchedAt == nil {
		t.Fatal("launched_at not stamped")
	}
	for _, l := range c.Launches {
		if l.Status != domain.LaunchActive {
			t.Fatalf("launch %s not active: %+v", l.Platform, l)
		}
		if l.ExternalCampaignID == "" || l.ExternalGroupID == "" || l.ExternalAdID == "" {
			t.Fatalf("launch %s missing external ids: %+v", l.Platform, l)
		}
		if l.AdCopy == "" || len(l.Media) == 0 {
			t.Fatalf("launch %s missing artifacts: %+v", l.Platform, l)
		}
	}

	// The processing slot must be free for the next campaign.
	resp2, err := p.svc.SubmitCampaign(ctx, submitReq())
	if err != nil {
		t.Fatalf("second SubmitCampaign error: %v", err)
	}
	id, err = p.svc.AdvanceQueue(ctx)
	if err != nil {
		t.Fatalf("second AdvanceQueue error: %v", err)
	}
	if id == nil || *id != resp2.CampaignID {
		t.Fatal("slot not released after successful launch")
	}
}

func TestUserSuppliedContentSkipsGeneration(t *testing.T) {
	// A mock generator with zero expectations: any call fails the test.
	gen := mocks.NewMockContentGenerator(t)
	p := newPipeline(t, gen)
	ctx := context.Background()

	req := submitReq()
	req.Message = "Hand-written message"
	req.Keywords = []string{"keto", "gummies"}
	req.Article = domain.Article{Headline: "h", Teaser: "t", BodyPhrases: []string{"p"}}
	for i := range req.Platforms {
		req.Platforms[i].GenerateWithAI = false
	}

	resp, err := p.svc.SubmitCampaign(ctx, req)
	if err != nil {
		t.Fatalf("SubmitCampaign error: %v", err)
	}
	if _, err = p.svc.AdvanceQueue(ctx); err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}

	c, _ := p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Status != domain.StatusActive {
		t.Fatalf("expected active campaign, got %s (error: %+v)", c.Status, c.Error)
	}
	if c.Message != "Hand-written message" {
		t.Fatalf("user message overwritten: %q", c.Message)
	}
	// The hand-written keywords must still reach the affiliate network.
	if got := p.network.Keywords(c.AffiliateCampaignID); len(got) != 2 || got[0] != "keto" {
		t.Fatalf("user keywords not submitted to the network: %v", got)
	}
	if !c.KeywordsSubmitted {
		t.Fatal("keyword submission not recorded on the campaign")
	}
}

func TestArticleApprovalParksAndResumes(t *testing.T) {
	p := newPipeline(t, nil)
	p.network.Decision = port.ArticlePending
	p.network.ApproveAfter = 1
	ctx := context.Background()

	resp, err := p.svc.SubmitCampaign(ctx, submitReq())
	if err != nil {
		t.Fatalf("SubmitCampaign error: %v", err)
	}
	if _, err = p.svc.AdvanceQueue(ctx); err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}

	c, _ := p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Status != domain.StatusAwaitingApproval {
		t.Fatalf("expected awaiting approval, got %s", c.Status)
	}

	// While parked the campaign holds the processing slot.
	resp2, _ := p.svc.SubmitCampaign(ctx, submitReq())
	if id, _ := p.svc.AdvanceQueue(ctx); id != nil {
		t.Fatal("queue advanced while a campaign was parked in approval")
	}

	// First poll: still pending.
	status, err := p.svc.ResolveArticleApproval(ctx, resp.CampaignID)
	if err != nil {
		t.Fatalf("ResolveArticleApproval error: %v", err)
	}
	if status != domain.StatusAwaitingApproval {
		t.Fatalf("expected campaign to stay parked, got %s", status)
	}

	// Second poll: approved, pipeline resumes to active.
	status, err = p.svc.ResolveArticleApproval(ctx, resp.CampaignID)
	if err != nil {
		t.Fatalf("ResolveArticleApproval error: %v", err)
	}
	if status != domain.StatusActive {
		t.Fatalf("expected active after approval, got %s", status)
	}

	// Approval released the slot; the waiting campaign may now start.
	id, err := p.svc.AdvanceQueue(ctx)
	if err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}
	if id == nil || *id != resp2.CampaignID {
		t.Fatal("slot not released after approval resume")
	}
}

func TestArticleRejectionFailsWithReason(t *testing.T) {
	p := newPipeline(t, nil)
	p.network.Decision = port.ArticlePending
	p.network.RejectReason = "misleading health claims"
	ctx := context.Background()

	resp, _ := p.svc.SubmitCampaign(ctx, submitReq())
	if _, err := p.svc.AdvanceQueue(ctx); err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}

	status, err := p.svc.ResolveArticleApproval(ctx, resp.CampaignID)
	if err != nil {
		t.Fatalf("ResolveArticleApproval error: %v", err)
	}
	if status != domain.StatusFailed {
		t.Fatalf("expected failed, got %s", status)
	}

	c, _ := p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Error == nil || c.Error.Step != StepArticle {
		t.Fatalf("expected article error details, got %+v", c.Error)
	}
	if want := "misleading health claims"; !strings.Contains(c.Error.Technical, want) {
		t.Fatalf("network reason %q missing from %q", want, c.Error.Technical)
	}
}

func TestDesignGateParksUntilComplete(t *testing.T) {
	p := newPipeline(t, nil)
	ctx := context.Background()

	req := submitReq()
	req.NeedsDesign = true
	resp, _ := p.svc.SubmitCampaign(ctx, req)
	if _, err := p.svc.AdvanceQueue(ctx); err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}

	c, _ := p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Status != domain.StatusAwaitingDesign {
		t.Fatalf("expected awaiting design, got %s", c.Status)
	}

	if err := p.svc.MarkDesignComplete(ctx, resp.CampaignID); err != nil {
		t.Fatalf("MarkDesignComplete error: %v", err)
	}
	c, _ = p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Status != domain.StatusActive {
		t.Fatalf("expected active after design, got %s (error: %+v)", c.Status, c.Error)
	}
}

func TestPlatformFailureFailsCampaignAndResubmitRecovers(t *testing.T) {
	p := newPipeline(t, nil)
	p.meta.FailWith(sandbox.OpCreateAd,
		&port.ProviderError{Provider: "meta", Op: "create_ad", StatusCode: 400, Message: "creative rejected"})
	ctx := context.Background()

	resp, _ := p.svc.SubmitCampaign(ctx, submitReq())
	if _, err := p.svc.AdvanceQueue(ctx); err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}

	c, _ := p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Status != domain.StatusFailed {
		t.Fatalf("expected failed, got %s", c.Status)
	}
	if c.Error == nil || c.Error.Step != StepAd || c.Error.Platform != "meta" {
		t.Fatalf("expected meta ad step in error details, got %+v", c.Error)
	}
	// The healthy platform keeps its external state.
	for _, l := range c.Launches {
		if l.Platform == "google" && l.Status != domain.LaunchActive {
			t.Fatalf("google launch lost: %+v", l)
		}
	}

	// Operator fixes the creative and resubmits.
	p.meta.FailWith(sandbox.OpCreateAd, nil)
	if _, err := p.svc.Resubmit(ctx, resp.CampaignID); err != nil {
		t.Fatalf("Resubmit error: %v", err)
	}
	if _, err := p.svc.AdvanceQueue(ctx); err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}

	c, _ = p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Status != domain.StatusActive {
		t.Fatalf("expected active after resubmit, got %s (error: %+v)", c.Status, c.Error)
	}
	if c.Error != nil {
		t.Fatalf("error details not cleared: %+v", c.Error)
	}
}

func TestWithdrawReturnsCampaignToDraft(t *testing.T) {
	p := newPipeline(t, nil)
	ctx := context.Background()

	resp, _ := p.svc.SubmitCampaign(ctx, submitReq())
	if err := p.svc.Withdraw(ctx, resp.CampaignID); err != nil {
		t.Fatalf("Withdraw error: %v", err)
	}

	c, _ := p.svc.GetCampaign(ctx, resp.CampaignID)
	if c.Status != domain.StatusDraft {
		t.Fatalf("expected draft, got %s", c.Status)
	}
	if id, _ := p.svc.AdvanceQueue(ctx); id != nil {
		t.Fatal("withdrawn campaign still in queue")
	}

	// Withdrawing a campaign that is not queued is an invalid transition.
	err := p.svc.Withdraw(ctx, resp.CampaignID)
	var tErr *domain.InvalidTransitionError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *InvalidTransitionError, got %v", err)
	}
}

func TestRestoreQueueRebuildsFromRepository(t *testing.T) {
	p := newPipeline(t, nil)
	ctx := context.Background()

	first, _ := p.svc.SubmitCampaign(ctx, submitReq())
	second, _ := p.svc.SubmitCampaign(ctx, submitReq())

	// Fresh orchestrator over the same repository simulates a restart.
	restarted := newPipeline(t, nil)
	restarted.svc.repo = p.repo
	restarted.svc.stage.repo = p.repo
	restarted.svc.launcher.repo = p.repo
	if err := restarted.svc.RestoreQueue(ctx); err != nil {
		t.Fatalf("RestoreQueue error: %v", err)
	}

	id, err := restarted.svc.AdvanceQueue(ctx)
	if err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}
	if id == nil || *id != first.CampaignID {
		t.Fatalf("expected %s first after restore, got %v", first.CampaignID, id)
	}
	id, err = restarted.svc.AdvanceQueue(ctx)
	if err != nil {
		t.Fatalf("AdvanceQueue error: %v", err)
	}
	if id == nil || *id != second.CampaignID {
		t.Fatalf("expected %s second after restore, got %v", second.CampaignID, id)
	}
}
