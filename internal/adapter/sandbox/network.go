package sandbox

import (
	"context"
	"fmt"
	"sync"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// Network simulates the affiliate network. By default every article is
// approved synchronously; set Decision to port.ArticlePending to exercise
// the approval parking path and flip ApproveAfter polls later.
type Network struct {
	mu  sync.Mutex
	seq int

	// Decision returned by SubmitArticle.
	Decision port.ArticleDecision
	// ApproveAfter is how many PollArticleApproval calls report pending
	// before the article is approved.
	ApproveAfter int
	// RejectReason, when set, makes polls reject with this reason.
	RejectReason string

	keywords map[string][]string
	polled   map[string]int
}

// NewNetwork returns a sandbox network approving articles synchronously.
func NewNetwork() *Network {
	return &Network{
		Decision: port.ArticleApproved,
		keywords: make(map[string][]string),
		polled:   make(map[string]int),
	}
}

func (n *Network) CreateCampaign(ctx context.Context, c *domain.Campaign) (string, string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	id := fmt.Sprintf("aff-%d", n.seq)
	return id, fmt.Sprintf("https://track.launchpro.dev/c/%s", id), nil
}

func (n *Network) SetKeywords(ctx context.Context, externalID string, keywords []string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.keywords[externalID] = keywords
	return nil
}

// Keywords returns the keyword set last submitted for a network campaign.
func (n *Network) Keywords(externalID string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.keywords[externalID]
}

func (n *Network) SubmitArticle(ctx context.Context, externalID string, article domain.Article) (port.ArticleResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	res := port.ArticleResult{
		RequestID: fmt.Sprintf("req-%d", n.seq),
		Decision:  n.Decision,
	}
	if res.Decision == "" {
		res.Decision = port.ArticleApproved
	}
	return res, nil
}

func (n *Network) PollArticleApproval(ctx context.Context, requestID string) (port.ArticleResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.RejectReason != "" {
		return port.ArticleResult{RequestID: requestID, Decision: port.ArticleRejected, Reason: n.RejectReason}, nil
	}
	n.polled[requestID]++
	if n.polled[requestID] <= n.ApproveAfter {
		return port.ArticleResult{RequestID: requestID, Decision: port.ArticlePending}, nil
	}
	return port.ArticleResult{RequestID: requestID, Decision: port.ArticleApproved}, nil
}
