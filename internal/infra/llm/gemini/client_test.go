package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/yanqian/medifind/internal/domain/directory"
	apperrors "github.com/yanqian/medifind/pkg/errors"
)

type stubModels struct {
	resp     *genai.GenerateContentResponse
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	deadline bool
}

func (s *stubModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.model = model
	s.contents = contents
	s.config = config
	_, s.deadline = ctx.Deadline()
	return s.resp, s.err
}

func TestGenerateMapsTextReferencesAndUsage(t *testing.T) {
	stub := &stubModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: "```json\n[]\n```"}}},
			GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: []*genai.GroundingChunk{
				{Maps: &genai.GroundingChunkMaps{URI: "https://maps.google.com/?cid=1"}},
				{Web: &genai.GroundingChunkWeb{URI: "https://example.com"}},
				{RetrievedContext: &genai.GroundingChunkRetrievedContext{URI: "ignored"}},
				nil,
			}},
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:        120,
			CandidatesTokenCount:    80,
			ToolUsePromptTokenCount: 15,
			TotalTokenCount:         215,
		},
	}}
	client := newClient(Config{Temperature: 0.3}, stub)

	result, err := client.Generate(context.Background(), "find doctors", directory.GenerateOptions{EnableWebSearch: true})
	require.NoError(t, err)
	require.Equal(t, "```json\n[]\n```", result.RawText)
	require.Equal(t, []directory.GroundingReference{
		{MapURI: "https://maps.google.com/?cid=1"},
		{WebURI: "https://example.com"},
		{},
	}, result.References)
	require.Equal(t, 120, result.Usage.PromptTokens)
	require.Equal(t, 80, result.Usage.CompletionTokens)
	require.Equal(t, 15, result.Usage.ToolTokens)
	require.Equal(t, 215, result.Usage.TotalTokens)

	require.Equal(t, defaultModel, stub.model)
	require.True(t, stub.deadline)
	require.Len(t, stub.contents, 1)
	require.Equal(t, "find doctors", stub.contents[0].Parts[0].Text)
	require.NotNil(t, stub.config.Temperature)
	require.InDelta(t, 0.3, *stub.config.Temperature, 1e-6)
}

func TestGenerateKeepsChunkPositions(t *testing.T) {
	stub := &stubModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: "```json\n[]\n```"}}},
			GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: []*genai.GroundingChunk{
				{RetrievedContext: &genai.GroundingChunkRetrievedContext{URI: "https://docs/a"}},
				{Maps: &genai.GroundingChunkMaps{URI: "https://maps/B"}},
			}},
		}},
	}}
	client := newClient(Config{}, stub)

	result, err := client.Generate(context.Background(), "find hospitals", directory.GenerateOptions{EnableMaps: true})
	require.NoError(t, err)
	require.Equal(t, []directory.GroundingReference{{}, {MapURI: "https://maps/B"}}, result.References)

	payload := directory.Extract("```json\n[{\"name\":\"A\",\"address\":\"Road 1\"},{\"name\":\"B\",\"address\":\"Road 2\"}]\n```")
	facilities := directory.Normalize(payload, result.References, directory.SearchTypeHospital).Facilities
	require.Len(t, facilities, 2)
	require.Equal(t, directory.MapSearchURL("A", "Road 1"), facilities[0].MapURL)
	require.Equal(t, "https://maps/B", facilities[1].MapURL)
}

func TestGenerateWrapsFailures(t *testing.T) {
	client := newClient(Config{Model: "gemini-test"}, &stubModels{err: errors.New("quota exceeded")})
	_, err := client.Generate(context.Background(), "hi", directory.GenerateOptions{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeGenerationFailed))

	client = newClient(Config{}, &stubModels{})
	_, err = client.Generate(context.Background(), "hi", directory.GenerateOptions{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeGenerationFailed))
}

func TestContentConfigTools(t *testing.T) {
	client := newClient(Config{Timeout: time.Second}, &stubModels{})

	plain := client.contentConfig(directory.GenerateOptions{})
	require.Empty(t, plain.Tools)
	require.Nil(t, plain.ToolConfig)
	require.Nil(t, plain.Temperature)

	geo := &directory.GeoCoordinates{Latitude: 23.8, Longitude: 90.4}
	grounded := client.contentConfig(directory.GenerateOptions{EnableWebSearch: true, EnableMaps: true, GeoBias: geo})
	require.Len(t, grounded.Tools, 2)
	require.NotNil(t, grounded.Tools[0].GoogleSearch)
	require.NotNil(t, grounded.Tools[1].GoogleMaps)
	require.NotNil(t, grounded.ToolConfig)
	require.Equal(t, 23.8, *grounded.ToolConfig.RetrievalConfig.LatLng.Latitude)
	require.Equal(t, 90.4, *grounded.ToolConfig.RetrievalConfig.LatLng.Longitude)

	noMaps := client.contentConfig(directory.GenerateOptions{EnableWebSearch: true, GeoBias: geo})
	require.Len(t, noMaps.Tools, 1)
	require.Nil(t, noMaps.ToolConfig)
}

func TestReferencesFromEmptyResponse(t *testing.T) {
	require.Nil(t, referencesFrom(nil))
	require.Nil(t, referencesFrom(&genai.GenerateContentResponse{}))
	require.True(t, usageFrom(&genai.GenerateContentResponse{}).IsZero())
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{APIKey: " "})
	require.Error(t, err)
}
