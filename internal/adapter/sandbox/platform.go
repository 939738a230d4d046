// Package sandbox provides in-memory stand-ins for the external
// collaborators: ad platforms, the affiliate network and the content
// generator. They let the service run end-to-end without provider
// credentials and back the pipeline tests.
package sandbox

import (
	"context"
	"fmt"
	"sync"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// Platform op names accepted by FailWith.
const (
	OpCreateCampaign = "create_campaign"
	OpCreateAdGroup  = "create_ad_group"
	OpCreateAd       = "create_ad"
	OpUploadMedia    = "upload_media"
	OpPollMedia      = "poll_media"
)

// Platform simulates one ad platform. Identifiers are sequential and
// prefixed with the platform name. Failures can be scripted per operation;
// a scripted failure repeats until cleared, matching a persistently broken
// provider.
type Platform struct {
	name string

	mu  sync.Mutex
	seq int
	// polls until an uploaded asset reports ready
	ProcessingPolls int
	failures        map[string]error
	pollCount       map[string]int
}

// NewPlatform returns a sandbox platform with the given registry name.
func NewPlatform(name string) *Platform {
	return &Platform{
		name:      name,
		failures:  make(map[string]error),
		pollCount: make(map[string]int),
	}
}

// FailWith scripts err for the operation; pass nil to clear it.
func (p *Platform) FailWith(op string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failures, op)
		return
	}
	p.failures[op] = err
}

func (p *Platform) Name() string { return p.name }

func (p *Platform) CreateCampaign(ctx context.Context, req port.CampaignRequest) (string, error) {
	return p.create(OpCreateCampaign, "cmp")
}

func (p *Platform) CreateAdGroup(ctx context.Context, req port.AdGroupRequest) (string, error) {
	return p.create(OpCreateAdGroup, "grp")
}

func (p *Platform) CreateAd(ctx context.Context, req port.AdRequest) (string, error) {
	return p.create(OpCreateAd, "ad")
}

func (p *Platform) UploadMedia(ctx context.Context, asset domain.MediaAsset) (string, error) {
	return p.create(OpUploadMedia, "asset")
}

func (p *Platform) PollMediaReady(ctx context.Context, assetID string) (port.MediaState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.failures[OpPollMedia]; ok {
		return "", err
	}
	p.pollCount[assetID]++
	if p.pollCount[assetID] <= p.ProcessingPolls {
		return port.MediaProcessing, nil
	}
	return port.MediaReady, nil
}

func (p *Platform) create(op, kind string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.failures[op]; ok {
		return "", err
	}
	p.seq++
	return fmt.Sprintf("%s-%s-%d", p.name, kind, p.seq), nil
}
