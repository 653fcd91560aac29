package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/yanqian/medifind/internal/domain/directory"
	apperrors "github.com/yanqian/medifind/pkg/errors"
	"github.com/yanqian/medifind/pkg/metrics"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 60 * time.Second
)

// Config holds the knobs for the generation client.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client adapts the Gemini API to directory.Generator.
type Client struct {
	cfg    Config
	models contentGenerator
}

// NewClient constructs a Gemini client bound to the public Gemini API backend.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newClient(cfg, sdk.Models), nil
}

func newClient(cfg Config, models contentGenerator) *Client {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{cfg: cfg, models: models}
}

// Generate performs a single round trip. Grounding references are returned in
// the order the API reports them.
func (c *Client) Generate(ctx context.Context, prompt string, opts directory.GenerateOptions) (directory.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), c.contentConfig(opts))
	if err != nil {
		return directory.GenerationResult{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "generation request failed", err)
	}
	if resp == nil {
		return directory.GenerationResult{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "generation returned no response", nil)
	}
	return directory.GenerationResult{
		RawText:    resp.Text(),
		References: referencesFrom(resp),
		Usage:      usageFrom(resp),
	}, nil
}

func (c *Client) contentConfig(opts directory.GenerateOptions) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if c.cfg.Temperature > 0 {
		cfg.Temperature = genai.Ptr(c.cfg.Temperature)
	}
	if opts.EnableWebSearch {
		cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}
	if opts.EnableMaps {
		cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleMaps: &genai.GoogleMaps{}})
		if opts.GeoBias != nil {
			cfg.ToolConfig = &genai.ToolConfig{
				RetrievalConfig: &genai.RetrievalConfig{
					LatLng: &genai.LatLng{
						Latitude:  genai.Ptr(opts.GeoBias.Latitude),
						Longitude: genai.Ptr(opts.GeoBias.Longitude),
					},
				},
			}
		}
	}
	return cfg
}

// referencesFrom flattens the grounding chunks of the first candidate. Every
// chunk keeps its position, even one carrying neither a web nor a maps URI,
// since records pick their reference by index.
func referencesFrom(resp *genai.GenerateContentResponse) []directory.GroundingReference {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}
	refs := make([]directory.GroundingReference, 0, len(meta.GroundingChunks))
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil {
			continue
		}
		var ref directory.GroundingReference
		if chunk.Web != nil {
			ref.WebURI = chunk.Web.URI
		}
		if chunk.Maps != nil {
			ref.MapURI = chunk.Maps.URI
		}
		refs = append(refs, ref)
	}
	return refs
}

func usageFrom(resp *genai.GenerateContentResponse) metrics.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return metrics.TokenUsage{}
	}
	u := resp.UsageMetadata
	return metrics.TokenUsage{
		PromptTokens:     int(u.PromptTokenCount),
		CompletionTokens: int(u.CandidatesTokenCount),
		ToolTokens:       int(u.ToolUsePromptTokenCount),
		TotalTokens:      int(u.TotalTokenCount),
	}
}
