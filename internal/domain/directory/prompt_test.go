package directory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/medifind/pkg/errors"
)

func TestBuildPromptEmbedsSearchFilters(t *testing.T) {
	req, err := SearchPromptRequest(SearchRequest{
		SearchType: SearchTypeDoctor,
		Location:   "Dhanmondi, Dhaka",
		Specialty:  "Cardiology",
		Gender:     "Female",
		Language:   LanguageBangla,
	}, nil)
	require.NoError(t, err)

	prompt, err := BuildPrompt(req)
	require.NoError(t, err)
	require.Equal(t, KindPractitioner, prompt.Kind)
	require.Contains(t, prompt.Instruction, "Dhanmondi, Dhaka")
	require.Contains(t, prompt.Instruction, "Cardiology")
	require.Contains(t, prompt.Instruction, "Female")
	require.Contains(t, prompt.Instruction, "Bangla")
	require.Contains(t, prompt.Instruction, "```json")
	require.Contains(t, prompt.Schema, "contactInfo")
}

func TestBuildPromptSelectsTemplatePerSearchType(t *testing.T) {
	cases := map[SearchType]RequestKind{
		SearchTypeDoctor:    KindPractitioner,
		SearchTypeHospital:  KindFacility,
		SearchTypeAmbulance: KindGenericService,
		SearchTypePharmacy:  KindGenericService,
		SearchTypeBloodBank: KindGenericService,
		SearchTypeOxygen:    KindGenericService,
	}
	for searchType, kind := range cases {
		req, err := SearchPromptRequest(SearchRequest{SearchType: searchType, Location: "Sylhet"}, nil)
		require.NoError(t, err)
		prompt, err := BuildPrompt(req)
		require.NoError(t, err)
		require.Equal(t, kind, prompt.Kind, string(searchType))
	}
}

func TestBuildPromptServiceTemplateNamesType(t *testing.T) {
	req, err := SearchPromptRequest(SearchRequest{SearchType: SearchTypeBloodBank, Location: "Khulna"}, nil)
	require.NoError(t, err)
	prompt, err := BuildPrompt(req)
	require.NoError(t, err)
	require.Contains(t, prompt.Instruction, "Find blood bank services")
	require.Contains(t, prompt.Schema, `"type": "blood_bank"`)
}

func TestBuildPromptFallsBackToCoordinates(t *testing.T) {
	geo := &GeoCoordinates{Latitude: 23.8103, Longitude: 90.4125}
	req, err := SearchPromptRequest(SearchRequest{SearchType: SearchTypeHospital}, geo)
	require.NoError(t, err)
	prompt, err := BuildPrompt(req)
	require.NoError(t, err)
	require.Contains(t, prompt.Instruction, "23.810300")
	require.Contains(t, prompt.Instruction, "90.412500")

	req.Geo = nil
	prompt, err = BuildPrompt(req)
	require.NoError(t, err)
	require.Contains(t, prompt.Instruction, "Unknown location")
}

func TestBuildPromptEmbedsBlankLocationUnmodified(t *testing.T) {
	geo := &GeoCoordinates{Latitude: 23.8103, Longitude: 90.4125}
	req, err := SearchPromptRequest(SearchRequest{SearchType: SearchTypeDoctor, Location: "   "}, geo)
	require.NoError(t, err)
	prompt, err := BuildPrompt(req)
	require.NoError(t, err)
	require.Contains(t, prompt.Instruction, "Location:    \n")
	require.NotContains(t, prompt.Instruction, "23.810300")
}

func TestBuildPromptRejectsUnknownKind(t *testing.T) {
	_, err := BuildPrompt(PromptRequest{Kind: "telepathy"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidRequestKind))

	_, err = SearchPromptRequest(SearchRequest{SearchType: "dentist"}, nil)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidRequestKind))
}

func TestBuildPromptChatIncludesHistoryAndSafety(t *testing.T) {
	prompt, err := BuildPrompt(PromptRequest{
		Kind:     KindChat,
		Language: LanguageEnglish,
		Query:    "I have a mild headache",
		History: []ChatTurn{
			{Role: RoleUser, Text: "hello"},
			{Role: RoleAssistant, Text: "Hi, how can I help?"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, KindChat, prompt.Kind)
	require.Contains(t, prompt.Instruction, `User Query: "I have a mild headache"`)
	require.Contains(t, prompt.Instruction, "User: hello")
	require.Contains(t, prompt.Instruction, "Assistant: Hi, how can I help?")
	require.Contains(t, prompt.Instruction, "Respond in English.")
	require.Contains(t, prompt.Instruction, "STRICTLY AVOID")
	require.NotContains(t, prompt.Instruction, "```json")
}

func TestBuildPromptArticleUsesCountAndDate(t *testing.T) {
	today := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	prompt, err := BuildPrompt(PromptRequest{
		Kind:         KindArticle,
		Language:     LanguageBangla,
		ArticleCount: 4,
		Today:        today,
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(prompt.Instruction, "Find 4 recent"))
	require.Contains(t, prompt.Instruction, "Monday, July 1, 2024")
	require.Contains(t, prompt.Instruction, "Bangla")

	prompt, err = BuildPrompt(PromptRequest{Kind: KindArticle, Today: today})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(prompt.Instruction, "Find 6 recent"))
}
