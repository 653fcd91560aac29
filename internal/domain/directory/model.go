package directory

import (
	"time"

	"github.com/yanqian/medifind/pkg/metrics"
)

// Language selects the output language of generated content.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBangla  Language = "bn"
)

// Name returns the language name used inside prompts.
func (l Language) Name() string {
	if l == LanguageBangla {
		return "Bangla"
	}
	return "English"
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageBangla
}

// SearchType is the directory category a search targets.
type SearchType string

const (
	SearchTypeDoctor    SearchType = "doctor"
	SearchTypeHospital  SearchType = "hospital"
	SearchTypeAmbulance SearchType = "ambulance"
	SearchTypePharmacy  SearchType = "pharmacy"
	SearchTypeBloodBank SearchType = "blood_bank"
	SearchTypeOxygen    SearchType = "oxygen"
)

// SearchTypes lists every recognised search type.
var SearchTypes = []SearchType{
	SearchTypeDoctor,
	SearchTypeHospital,
	SearchTypeAmbulance,
	SearchTypePharmacy,
	SearchTypeBloodBank,
	SearchTypeOxygen,
}

// RequestKind discriminates prompt templates.
type RequestKind string

const (
	KindPractitioner   RequestKind = "practitioner"
	KindFacility       RequestKind = "facility"
	KindGenericService RequestKind = "generic_service"
	KindChat           RequestKind = "chat"
	KindArticle        RequestKind = "article"
)

// Kind maps a search type onto its prompt template.
func (t SearchType) Kind() (RequestKind, bool) {
	switch t {
	case SearchTypeDoctor:
		return KindPractitioner, true
	case SearchTypeHospital:
		return KindFacility, true
	case SearchTypeAmbulance, SearchTypePharmacy, SearchTypeBloodBank, SearchTypeOxygen:
		return KindGenericService, true
	default:
		return "", false
	}
}

// SearchRequest holds the directory filters supplied by the UI.
type SearchRequest struct {
	SearchType SearchType `json:"searchType" binding:"required,searchtype"`
	Location   string     `json:"location"`
	Specialty  string     `json:"specialty"`
	Gender     string     `json:"gender"`
	FeeRange   string     `json:"feeRange,omitempty"`
	Language   Language   `json:"language" binding:"omitempty,lang"`
}

// GeoCoordinates bias grounding towards the caller's position. Never stored.
type GeoCoordinates struct {
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
}

// GroundingReference is one retrieval chunk returned alongside generated text.
type GroundingReference struct {
	WebURI string `json:"webUri,omitempty"`
	MapURI string `json:"mapUri,omitempty"`
}

// GenerationResult is the raw outcome of one generation call.
type GenerationResult struct {
	RawText    string
	References []GroundingReference
	Usage      metrics.TokenUsage
}

// GenerateOptions toggles grounding tools for a single call.
type GenerateOptions struct {
	EnableWebSearch bool
	EnableMaps      bool
	GeoBias         *GeoCoordinates
}

// Practitioner is a doctor record.
type Practitioner struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	Qualification string   `json:"qualification"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	Address       string   `json:"address,omitempty"`
	Experience    string   `json:"experience"`
	VisitingHours string   `json:"visitingHours"`
	Fee           string   `json:"fee"`
	ContactInfo   string   `json:"contactInfo"`
	Rating        string   `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	IsVerified    bool     `json:"isVerified"`
	Languages     []string `json:"languages,omitempty"`
	NextAvailable string   `json:"nextAvailable,omitempty"`
	SourceURL     string   `json:"sourceUrl,omitempty"`
	MapURL        string   `json:"mapUrl,omitempty"`
}

// Facility is a hospital or clinic record.
type Facility struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	EmergencyPhone     string   `json:"emergencyPhone,omitempty"`
	Departments        []string `json:"departments"`
	Features           []string `json:"features,omitempty"`
	VisitingHours      string   `json:"visitingHours"`
	Rating             string   `json:"rating,omitempty"`
	Website            string   `json:"website,omitempty"`
	TotalBeds          string   `json:"totalBeds,omitempty"`
	AmbulanceAvailable bool     `json:"ambulanceAvailable"`
	SourceURL          string   `json:"sourceUrl,omitempty"`
	MapURL             string   `json:"mapUrl,omitempty"`
}

// GenericService covers ambulances, pharmacies, blood banks and oxygen suppliers.
type GenericService struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	IsOpen24Hours     bool   `json:"isOpen24Hours"`
	DeliveryAvailable bool   `json:"deliveryAvailable"`
	SourceURL         string `json:"sourceUrl,omitempty"`
	MapURL            string `json:"mapUrl,omitempty"`
}

// SearchResult carries exactly one populated record slice, selected by SearchType.
type SearchResult struct {
	SearchType    SearchType       `json:"searchType"`
	Practitioners []Practitioner   `json:"doctors,omitempty"`
	Facilities    []Facility       `json:"hospitals,omitempty"`
	Services      []GenericService `json:"services,omitempty"`
}

// Len returns the number of records regardless of shape.
func (r SearchResult) Len() int {
	return len(r.Practitioners) + len(r.Facilities) + len(r.Services)
}

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one message of a caller-owned chat session.
type ChatTurn struct {
	Role      ChatRole  `json:"role" binding:"required,oneof=user assistant model"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is a new user query plus read-only history.
type ChatRequest struct {
	Query    string     `json:"query" binding:"required"`
	History  []ChatTurn `json:"history" binding:"dive"`
	Language Language   `json:"language" binding:"omitempty,lang"`
}

// Article is a generated health article.
type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ReadTime string `json:"readTime"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Config wires runtime knobs for the directory service.
type Config struct {
	MaxHistoryTurns  int
	ArticleBatchSize int
}
