// Package gemini implements the content generator port on top of Google's
// Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"launchpro/internal/core/domain"
	"launchpro/internal/core/port"
)

// Generator produces campaign content with Gemini text and media models.
// Generated media is written to AssetsDir and referenced by AssetsBaseURL,
// so the platform adapters can fetch it during upload.
type Generator struct {
	client *genai.Client

	textModel  string
	imageModel string
	videoModel string

	assetsDir     string
	assetsBaseURL string
}

// Config configures the Gemini generator. Empty model names fall back to
// current defaults.
type Config struct {
	APIKey        string
	TextModel     string
	ImageModel    string
	VideoModel    string
	AssetsDir     string
	AssetsBaseURL string
}

// New creates a Gemini-backed generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	g := &Generator{
		client:        client,
		textModel:     cfg.TextModel,
		imageModel:    cfg.ImageModel,
		videoModel:    cfg.VideoModel,
		assetsDir:     cfg.AssetsDir,
		assetsBaseURL: strings.TrimRight(cfg.AssetsBaseURL, "/"),
	}
	if g.textModel == "" {
		g.textModel = "gemini-2.0-flash"
	}
	if g.imageModel == "" {
		g.imageModel = "imagen-3.0-generate-002"
	}
	if g.videoModel == "" {
		g.videoModel = "veo-2.0-generate-001"
	}
	if g.assetsDir == "" {
		g.assetsDir = os.TempDir()
	}
	return g, nil
}

func (g *Generator) GenerateCopy(ctx context.Context, brief port.CampaignBrief) (string, error) {
	prompt := fmt.Sprintf(
		"Write a single short advertising message for the offer %q targeting %s, in language %q. "+
			"Optimize for a %s campaign. Reply with the message only.",
		brief.Name, brief.Country, brief.Language, brief.Type)
	return g.generateText(ctx, prompt)
}

func (g *Generator) GenerateKeywords(ctx context.Context, brief port.CampaignBrief, message string) ([]string, error) {
	prompt := fmt.Sprintf(
		"List 10 search keywords for an ad campaign in %s (%s) with this message: %q. "+
			"Reply with one keyword per line, no numbering.",
		brief.Country, brief.Language, message)
	text, err := g.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var keywords []string
	for _, line := range strings.Split(text, "\n") {
		if kw := strings.TrimSpace(strings.TrimPrefix(line, "-")); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("gemini returned no keywords")
	}
	return keywords, nil
}

func (g *Generator) GenerateArticle(ctx context.Context, brief port.CampaignBrief, message string, keywords []string) (domain.Article, error) {
	prompt := fmt.Sprintf(
		"Write an advertorial article for the offer %q in language %q. Message: %q. Keywords: %s. "+
			`Reply as JSON: {"headline": string, "teaser": string, "body_phrases": [string]}.`,
		brief.Name, brief.Language, message, strings.Join(keywords, ", "))

	resp, err := g.client.Models.GenerateContent(ctx, g.textModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return domain.Article{}, fmt.Errorf("gemini article generation failed: %w", err)
	}

	var article domain.Article
	if err = json.Unmarshal([]byte(resp.Text()), &article); err != nil {
		return domain.Article{}, fmt.Errorf("gemini returned malformed article JSON: %w", err)
	}
	return article, nil
}

func (g *Generator) GenerateAdCopy(ctx context.Context, brief port.CampaignBrief, platform, message string) (string, error) {
	prompt := fmt.Sprintf(
		"Rewrite this advertising message for the %s platform, keeping its meaning and language: %q. "+
			"Reply with the ad copy only.",
		platform, message)
	return g.generateText(ctx, prompt)
}

func (g *Generator) GenerateImage(ctx context.Context, brief port.CampaignBrief, spec port.MediaSpec) (domain.MediaAsset, error) {
	resp, err := g.client.Models.GenerateImages(ctx, g.imageModel, spec.Prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
			AspectRatio:    spec.AspectRatio,
		})
	if err != nil {
		return domain.MediaAsset{}, fmt.Errorf("gemini image generation failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return domain.MediaAsset{}, fmt.Errorf("gemini returned no image")
	}

	url, err := g.storeAsset(resp.GeneratedImages[0].Image.ImageBytes, ".png")
	if err != nil {
		return domain.MediaAsset{}, err
	}
	return domain.MediaAsset{
		Kind:        domain.MediaImage,
		URL:         url,
		AspectRatio: spec.AspectRatio,
	}, nil
}

func (g *Generator) GenerateVideo(ctx context.Context, brief port.CampaignBrief, spec port.MediaSpec) (domain.MediaAsset, error) {
	op, err := g.client.Models.GenerateVideos(ctx, g.videoModel, spec.Prompt, nil,
		&genai.GenerateVideosConfig{AspectRatio: spec.AspectRatio})
	if err != nil {
		return domain.MediaAsset{}, fmt.Errorf("gemini video generation failed: %w", err)
	}

	// Video generation is a long-running operation; poll until done or the
	// caller's deadline expires.
	for !op.Done {
		select {
		case <-ctx.Done():
			return domain.MediaAsset{}, ctx.Err()
		case <-time.After(5 * time.Second):
		}
		op, err = g.client.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return domain.MediaAsset{}, fmt.Errorf("gemini video poll failed: %w", err)
		}
	}
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video == nil {
		return domain.MediaAsset{}, fmt.Errorf("gemini returned no video")
	}

	url, err := g.storeAsset(op.Response.GeneratedVideos[0].Video.VideoBytes, ".mp4")
	if err != nil {
		return domain.MediaAsset{}, err
	}
	return domain.MediaAsset{
		Kind:        domain.MediaVideo,
		URL:         url,
		AspectRatio: spec.AspectRatio,
	}, nil
}

func (g *Generator) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini text generation failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}

func (g *Generator) storeAsset(data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("gemini returned empty media payload")
	}
	name := uuid.NewString() + ext
	path := filepath.Join(g.assetsDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store generated asset: %w", err)
	}
	if g.assetsBaseURL != "" {
		return g.assetsBaseURL + "/" + name, nil
	}
	return "file://" + path, nil
}
