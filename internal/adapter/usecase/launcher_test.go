package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"launchpro/internal/adapter/sandbox"
	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
	"launchpro/internal/core/port/mocks"
)

func newTestLauncher(t *testing.T, registry *port.Registry) (*Launcher, *mocks.MockCampaignRepository) {
	t.Helper()
	repo := mocks.NewMockCampaignRepository(t)
	l := NewLauncher(LauncherConfig{
		Registry:     registry,
		Repo:         repo,
		Policy:       fastPolicy(),
		CallTimeout:  time.Second,
		PollInterval: time.Millisecond,
		PollTimeout:  time.Second,
		Logger:       discardLogger(),
	})
	return l, repo
}

func twoLaunchCampaign() *domain.Campaign {
	c := &domain.Campaign{
		ID:       uuid.New(),
		Name:     "Fitness App",
		Type:     domain.CampaignTypeConversions,
		Country:  "GB",
		Language: "en",
		Message:  "Get fit",
		Keywords: []string{"fitness"},
	}
	c.Launches = []domain.PlatformLaunch{
		{ID: uuid.New(), CampaignID: c.ID, Platform: "meta", Budget: 5000, Status: domain.LaunchPending},
		{ID: uuid.New(), CampaignID: c.ID, Platform: "google", Budget: 5000, Status: domain.LaunchPending},
	}
	return c
}

// One platform's failure must not abort the other platform's sequence, and
// both outcomes must be persisted.
func TestLaunchIsolatesPlatformFailures(t *testing.T) {
	meta := sandbox.NewPlatform("meta")
	google := sandbox.NewPlatform("google")
	meta.FailWith(sandbox.OpCreateAdGroup,
		&port.ProviderError{Provider: "meta", Op: "create_ad_group", StatusCode: 400, Message: "invalid targeting"})

	registry := port.NewRegistry()
	registry.Register(meta)
	registry.Register(google)

	l, repo := newTestLauncher(t, registry)
	repo.EXPECT().UpdatePlatformLaunch(mock.Anything, mock.Anything).Return(nil)

	c := twoLaunchCampaign()
	results := l.Launch(context.Background(), c)

	byPlatform := map[string]PlatformResult{}
	for _, r := range results {
		byPlatform[r.Platform] = r
	}

	metaRes := byPlatform["meta"]
	if metaRes.Success {
		t.Fatal("expected meta to fail")
	}
	if metaRes.Step != StepAdGroup {
		t.Fatalf("expected failing step %q, got %q", StepAdGroup, metaRes.Step)
	}
	if !byPlatform["google"].Success {
		t.Fatalf("google should have launched despite meta: %+v", byPlatform["google"])
	}

	if c.Launches[0].Status != domain.LaunchFailed || c.Launches[0].Error == "" {
		t.Fatalf("meta launch not marked failed: %+v", c.Launches[0])
	}
	// The campaign was created on meta before the group failed; the id
	// must survive for the relaunch to resume from.
	if c.Launches[0].ExternalCampaignID == "" {
		t.Fatal("meta external campaign id lost")
	}
	g := c.Launches[1]
	if g.Status != domain.LaunchActive || g.ExternalCampaignID == "" || g.ExternalGroupID == "" || g.ExternalAdID == "" {
		t.Fatalf("google launch incomplete: %+v", g)
	}
}

// A relaunch must skip every step whose external identifier is already
// persisted.
func TestLaunchResumesFromPersistedIdentifiers(t *testing.T) {
	meta := sandbox.NewPlatform("meta")
	registry := port.NewRegistry()
	registry.Register(meta)

	l, repo := newTestLauncher(t, registry)
	repo.EXPECT().UpdatePlatformLaunch(mock.Anything, mock.Anything).Return(nil)

	c := twoLaunchCampaign()
	c.Launches = c.Launches[:1]
	c.Launches[0].ExternalCampaignID = "meta-cmp-99"
	c.Launches[0].ExternalGroupID = "meta-grp-99"

	results := l.Launch(context.Background(), c)
	if !results[0].Success {
		t.Fatalf("launch failed: %v", results[0].Err)
	}

	// The sandbox hands out sequential ids, so an ad id of meta-ad-1
	// proves the campaign and group steps were skipped.
	if got := c.Launches[0].ExternalAdID; got != "meta-ad-1" {
		t.Fatalf("expected only the ad to be created, got ad id %q", got)
	}
	if c.Launches[0].ExternalCampaignID != "meta-cmp-99" {
		t.Fatalf("persisted campaign id overwritten: %q", c.Launches[0].ExternalCampaignID)
	}
}

// A repository failure after the platform sequence completed is a storage
// problem, not an ad-creation problem, and must be labeled as such.
func TestLaunchLabelsPersistenceFailureDistinctly(t *testing.T) {
	meta := sandbox.NewPlatform("meta")
	registry := port.NewRegistry()
	registry.Register(meta)

	l, repo := newTestLauncher(t, registry)
	repo.EXPECT().UpdatePlatformLaunch(mock.Anything, mock.MatchedBy(func(launch *domain.PlatformLaunch) bool {
		return launch.Status == domain.LaunchActive
	})).Return(errors.New("connection reset"))
	repo.EXPECT().UpdatePlatformLaunch(mock.Anything, mock.MatchedBy(func(launch *domain.PlatformLaunch) bool {
		return launch.Status != domain.LaunchActive
	})).Return(nil)

	c := twoLaunchCampaign()
	c.Launches = c.Launches[:1]

	results := l.Launch(context.Background(), c)
	if results[0].Success {
		t.Fatal("expected the launch to fail on the final write")
	}
	if results[0].Step != StepPersist {
		t.Fatalf("expected step %q, got %q", StepPersist, results[0].Step)
	}
	// The ads exist on the platform; the identifiers must survive for the
	// relaunch to skip the creation steps.
	if c.Launches[0].ExternalAdID == "" {
		t.Fatal("external ad id lost")
	}
}

func TestLaunchFailsWhenMediaNeverProcesses(t *testing.T) {
	meta := sandbox.NewPlatform("meta")
	meta.ProcessingPolls = 1 << 30

	registry := port.NewRegistry()
	registry.Register(meta)

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().UpdatePlatformLaunch(mock.Anything, mock.Anything).Return(nil)
	l := NewLauncher(LauncherConfig{
		Registry:     registry,
		Repo:         repo,
		Policy:       fastPolicy(),
		CallTimeout:  time.Second,
		PollInterval: time.Millisecond,
		PollTimeout:  20 * time.Millisecond,
		Logger:       discardLogger(),
	})

	c := twoLaunchCampaign()
	c.Launches = c.Launches[:1]
	c.Launches[0].Media = []domain.MediaAsset{{Kind: domain.MediaImage, URL: "https://cdn/a.png", AspectRatio: "1:1"}}

	results := l.Launch(context.Background(), c)
	if results[0].Success {
		t.Fatal("expected launch to fail on media processing")
	}
	if results[0].Step != StepMediaProcessing {
		t.Fatalf("expected step %q, got %q", StepMediaProcessing, results[0].Step)
	}
	if c.Launches[0].Status != domain.LaunchFailed {
		t.Fatalf("launch not marked failed: %+v", c.Launches[0])
	}
	// The upload succeeded, so the asset id must be retained for the next
	// attempt to poll instead of re-uploading.
	if c.Launches[0].Media[0].AssetID == "" {
		t.Fatal("uploaded asset id lost")
	}
}
