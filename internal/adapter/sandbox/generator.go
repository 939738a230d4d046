package sandbox

import (
	"context"
	"fmt"
	"strings"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// Generator produces deterministic placeholder content. It stands in for
// the AI generator when no API key is configured.
type Generator struct{}

// NewGenerator returns the placeholder generator.
func NewGenerator() *Generator { return &Generator{} }

func (g *Generator) GenerateCopy(ctx context.Context, brief port.CampaignBrief) (string, error) {
	return fmt.Sprintf("Discover %s, now available in %s.", brief.Name, brief.Country), nil
}

func (g *Generator) GenerateKeywords(ctx context.Context, brief port.CampaignBrief, message string) ([]string, error) {
	base := strings.ToLower(strings.ReplaceAll(brief.Name, " ", "-"))
	return []string{base, base + "-offer", base + "-" + strings.ToLower(brief.Country)}, nil
}

func (g *Generator) GenerateArticle(ctx context.Context, brief port.CampaignBrief, message string, keywords []string) (domain.Article, error) {
	return domain.Article{
		Headline:    fmt.Sprintf("Why everyone in %s is talking about %s", brief.Country, brief.Name),
		Teaser:      message,
		BodyPhrases: keywords,
	}, nil
}

func (g *Generator) GenerateAdCopy(ctx context.Context, brief port.CampaignBrief, platform, message string) (string, error) {
	return fmt.Sprintf("[%s] %s", platform, message), nil
}

func (g *Generator) GenerateImage(ctx context.Context, brief port.CampaignBrief, spec port.MediaSpec) (domain.MediaAsset, error) {
	return domain.MediaAsset{
		Kind:        domain.MediaImage,
		URL:         fmt.Sprintf("https://assets.launchpro.dev/sandbox/%s-%s.png", spec.Platform, strings.ReplaceAll(spec.AspectRatio, ":", "x")),
		AspectRatio: spec.AspectRatio,
	}, nil
}

func (g *Generator) GenerateVideo(ctx context.Context, brief port.CampaignBrief, spec port.MediaSpec) (domain.MediaAsset, error) {
	return domain.MediaAsset{
		Kind:        domain.MediaVideo,
		URL:         fmt.Sprintf("https://assets.launchpro.dev/sandbox/%s-%s.mp4", spec.Platform, strings.ReplaceAll(spec.AspectRatio, ":", "x")),
		AspectRatio: spec.AspectRatio,
	}, nil
}
