package directory

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/yanqian/medifind/pkg/errors"
)

// PromptRequest is the input of BuildPrompt. Only the fields relevant to Kind are read.
type PromptRequest struct {
	Kind     RequestKind
	Language Language

	Search SearchRequest
	Geo    *GeoCoordinates

	Query   string
	History []ChatTurn

	ArticleCount int
	Today        time.Time
}

// Prompt is the instruction text plus a description of the expected output.
type Prompt struct {
	Kind        RequestKind
	Instruction string
	Schema      string
}

const practitionerSchema = `{
  "id": "uuid",
  "name": "Dr. Name",
  "specialty": "Specialty",
  "qualification": "Degrees",
  "location": "Hospital/Chamber Name",
  "city": "City/Area",
  "address": "Full chamber address",
  "experience": "Years",
  "visitingHours": "Time",
  "fee": "Amount",
  "contactInfo": "01xxxxxxxxx",
  "rating": "4.8",
  "reviewCount": 120,
  "gender": "Male/Female",
  "isVerified": true,
  "languages": ["English", "Bangla"],
  "nextAvailable": "Today 5PM"
}`

const facilitySchema = `{
  "id": "uuid",
  "name": "Hospital Name",
  "address": "Full Address",
  "phone": "01xxxxxxxxx",
  "emergencyPhone": "Hotline Number",
  "departments": ["Dept A", "Dept B"],
  "features": ["ICU", "24/7 Pharmacy"],
  "visitingHours": "24/7 or specific",
  "rating": "4.5",
  "website": "URL",
  "totalBeds": "500+",
  "ambulanceAvailable": true
}`

const serviceSchemaTemplate = `{
  "id": "uuid",
  "name": "Service Name",
  "type": "%s",
  "address": "Address",
  "phone": "01xxxxxxxxx",
  "isOpen24Hours": true,
  "deliveryAvailable": true
}`

const articleSchema = `[
  {
    "id": "1",
    "title": "Article Title",
    "summary": "Short 2-line summary...",
    "content": "Full article text with 3-4 paragraphs. Use newline characters for paragraph breaks.",
    "category": "Nutrition/General Health",
    "readTime": "5 min"
  }
]`

const chatSchema = "Plain text answer. Bullet points allowed. No JSON."

// BuildPrompt selects the template for req.Kind and fills it. It performs no I/O.
func BuildPrompt(req PromptRequest) (Prompt, error) {
	switch req.Kind {
	case KindPractitioner:
		return buildPractitionerPrompt(req), nil
	case KindFacility:
		return buildFacilityPrompt(req), nil
	case KindGenericService:
		return buildServicePrompt(req), nil
	case KindChat:
		return buildChatPrompt(req), nil
	case KindArticle:
		return buildArticlePrompt(req), nil
	default:
		return Prompt{}, apperrors.Wrap(apperrors.CodeInvalidRequestKind, fmt.Sprintf("unrecognised request kind %q", req.Kind), nil)
	}
}

// SearchPromptRequest derives the prompt request for a directory search.
func SearchPromptRequest(search SearchRequest, geo *GeoCoordinates) (PromptRequest, error) {
	kind, ok := search.SearchType.Kind()
	if !ok {
		return PromptRequest{}, apperrors.Wrap(apperrors.CodeInvalidRequestKind, fmt.Sprintf("unrecognised search type %q", search.SearchType), nil)
	}
	return PromptRequest{
		Kind:     kind,
		Language: search.Language,
		Search:   search,
		Geo:      geo,
	}, nil
}

func buildPractitionerPrompt(req PromptRequest) Prompt {
	s := req.Search
	body := fmt.Sprintf(`Find real specialist doctors based on:
Location: %s
Specialty: %s
Gender: %s
Language: %s

CRITICAL: Use Google Search to find REAL, VALID phone numbers for appointments.
If a direct mobile number isn't available, provide the hospital reception number.

JSON Structure:
%s`, locationText(s.Location, req.Geo), s.Specialty, s.Gender, req.Language.Name(), practitionerSchema)
	return Prompt{Kind: KindPractitioner, Instruction: wrapSearch(body, req.Language), Schema: "array of " + practitionerSchema}
}

func buildFacilityPrompt(req PromptRequest) Prompt {
	s := req.Search
	body := fmt.Sprintf(`Find hospitals based on:
Location: %s
Focus: %s
Gender: %s
Language: %s

CRITICAL: Use Google Search to find REAL, VALID emergency and reception phone numbers.

JSON Structure:
%s`, locationText(s.Location, req.Geo), s.Specialty, s.Gender, req.Language.Name(), facilitySchema)
	return Prompt{Kind: KindFacility, Instruction: wrapSearch(body, req.Language), Schema: "array of " + facilitySchema}
}

func buildServicePrompt(req PromptRequest) Prompt {
	s := req.Search
	schema := fmt.Sprintf(serviceSchemaTemplate, s.SearchType)
	body := fmt.Sprintf(`Find %s services based on:
Location: %s
Specialty: %s
Gender: %s
Language: %s

CRITICAL: Use Google Search to find REAL, VALID contact numbers.
For Ambulances/Blood Banks, prioritize 24/7 hotlines.

JSON Structure:
%s`, strings.ReplaceAll(string(s.SearchType), "_", " "), locationText(s.Location, req.Geo), s.Specialty, s.Gender, req.Language.Name(), schema)
	return Prompt{Kind: KindGenericService, Instruction: wrapSearch(body, req.Language), Schema: "array of " + schema}
}

func wrapSearch(body string, lang Language) string {
	var b strings.Builder
	b.WriteString("You are a medical assistant. ")
	b.WriteString(body)
	b.WriteString("\n\nIMPORTANT: Provide the output strictly as a JSON array inside a markdown code block that starts with ```json and ends with ```.\n")
	b.WriteString("Translate text fields to ")
	b.WriteString(lang.Name())
	b.WriteString(" where appropriate.")
	return b.String()
}

func locationText(location string, geo *GeoCoordinates) string {
	if location != "" {
		return location
	}
	if geo != nil {
		return fmt.Sprintf("User's current coordinates (%.6f, %.6f)", geo.Latitude, geo.Longitude)
	}
	return "Unknown location"
}

func buildChatPrompt(req PromptRequest) Prompt {
	langInstruction := "Respond in English."
	if req.Language == LanguageBangla {
		langInstruction = "Respond in Bangla."
	}

	var b strings.Builder
	b.WriteString("You are a helpful, empathetic, and safe AI Health Assistant for a medical app called MediFind.\n\n")
	if len(req.History) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range req.History {
			fmt.Fprintf(&b, "%s: %s\n", historyLabel(turn.Role), strings.TrimSpace(turn.Text))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "User Query: \"%s\"\n\n", req.Query)
	b.WriteString("Instructions:\n")
	fmt.Fprintf(&b, "1. %s\n", langInstruction)
	b.WriteString("2. Provide helpful general health information.\n")
	b.WriteString("3. STRICTLY AVOID giving specific medical diagnoses or prescribing medication.\n")
	b.WriteString("4. If the user mentions severe symptoms (chest pain, breathing trouble, heavy bleeding), IMMEDIATELY advise them to call emergency services or visit a hospital.\n")
	b.WriteString("5. Be concise and use bullet points for readability.\n")
	b.WriteString("6. Tone: Professional, caring, and safe.")
	return Prompt{Kind: KindChat, Instruction: b.String(), Schema: chatSchema}
}

func historyLabel(role ChatRole) string {
	if role == RoleUser {
		return "User"
	}
	return "Assistant"
}

func buildArticlePrompt(req PromptRequest) Prompt {
	count := req.ArticleCount
	if count <= 0 {
		count = defaultArticleBatch
	}
	today := req.Today.Format("Monday, January 2, 2006")
	instruction := fmt.Sprintf(`Find %d recent, trending, and medically verified health tips or short articles suitable for the general public in %s.

Current Date: %s.

Instructions:
1. Focus on health topics relevant to the CURRENT DATE/SEASON (e.g., if summer: heatstroke, hydration; if winter: flu, skin care).
2. Include topics on Nutrition, Mental Health, or Disease Prevention.
3. Ensure content is accurate and safe.
4. Write every text field in %s.

Return strictly a JSON array of exactly %d objects inside a markdown code block that starts with `+"```json"+` and ends with `+"```"+`, using this structure:
%s`, count, req.Language.Name(), today, req.Language.Name(), count, articleSchema)
	return Prompt{Kind: KindArticle, Instruction: instruction, Schema: articleSchema}
}
