package directory

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const mapsSearchBase = "https://www.google.com/maps/search/"

type practitionerWire struct {
	ID            looseString  `json:"id"`
	Name          looseString  `json:"name"`
	Specialty     looseString  `json:"specialty"`
	Qualification looseString  `json:"qualification"`
	Location      looseString  `json:"location"`
	City          looseString  `json:"city"`
	Address       looseString  `json:"address"`
	Experience    looseString  `json:"experience"`
	VisitingHours looseString  `json:"visitingHours"`
	Fee           looseString  `json:"fee"`
	ContactInfo   looseString  `json:"contactInfo"`
	Rating        looseString  `json:"rating"`
	ReviewCount   looseInt     `json:"reviewCount"`
	Gender        looseString  `json:"gender"`
	IsVerified    looseBool    `json:"isVerified"`
	Languages     looseStrings `json:"languages"`
	NextAvailable looseString  `json:"nextAvailable"`
}

type facilityWire struct {
	ID                 looseString  `json:"id"`
	Name               looseString  `json:"name"`
	Address            looseString  `json:"address"`
	Phone              looseString  `json:"phone"`
	EmergencyPhone     looseString  `json:"emergencyPhone"`
	Departments        looseStrings `json:"departments"`
	Features           looseStrings `json:"features"`
	VisitingHours      looseString  `json:"visitingHours"`
	Rating             looseString  `json:"rating"`
	Website            looseString  `json:"website"`
	TotalBeds          looseString  `json:"totalBeds"`
	AmbulanceAvailable looseBool    `json:"ambulanceAvailable"`
}

type serviceWire struct {
	ID                looseString `json:"id"`
	Name              looseString `json:"name"`
	Type              looseString `json:"type"`
	Address           looseString `json:"address"`
	Phone             looseString `json:"phone"`
	IsOpen24Hours     looseBool   `json:"isOpen24Hours"`
	DeliveryAvailable looseBool   `json:"deliveryAvailable"`
}

// Normalize maps parsed records onto the record shape selected by searchType and
// attaches links. Record i uses refs[i mod len(refs)]; elements that are not JSON
// objects are dropped but still consume their index.
func Normalize(payload Payload, refs []GroundingReference, searchType SearchType) SearchResult {
	result := SearchResult{SearchType: searchType}
	elements := payloadElements(payload)
	if len(elements) == 0 {
		return result
	}
	kind, ok := searchType.Kind()
	if !ok {
		return result
	}

	for i, element := range elements {
		if firstByte(element) != '{' {
			continue
		}
		ref, hasRef := referenceFor(refs, i)
		switch kind {
		case KindPractitioner:
			var w practitionerWire
			if json.Unmarshal(element, &w) != nil {
				continue
			}
			p := w.toPractitioner()
			p.SourceURL, p.MapURL = resolveLinks(ref, hasRef, p.Name, p.mapQueryAddress())
			result.Practitioners = append(result.Practitioners, p)
		case KindFacility:
			var w facilityWire
			if json.Unmarshal(element, &w) != nil {
				continue
			}
			f := w.toFacility()
			f.SourceURL, f.MapURL = resolveLinks(ref, hasRef, f.Name, f.Address)
			result.Facilities = append(result.Facilities, f)
		case KindGenericService:
			var w serviceWire
			if json.Unmarshal(element, &w) != nil {
				continue
			}
			svc := w.toService(searchType)
			svc.SourceURL, svc.MapURL = resolveLinks(ref, hasRef, svc.Name, svc.Address)
			result.Services = append(result.Services, svc)
		}
	}
	return result
}

// payloadElements splits an array payload into its elements; a lone object is a
// one-element array. Anything else yields nothing.
func payloadElements(payload Payload) []json.RawMessage {
	if payload.IsEmpty() {
		return nil
	}
	raw := payload.Raw()
	switch firstByte(raw) {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil
		}
		return elements
	case '{':
		return []json.RawMessage{raw}
	default:
		return nil
	}
}

type articleWire struct {
	ID       looseString `json:"id"`
	Title    looseString `json:"title"`
	Summary  looseString `json:"summary"`
	Content  looseString `json:"content"`
	Category looseString `json:"category"`
	ReadTime looseString `json:"readTime"`
	ImageURL looseString `json:"imageUrl"`
}

// NormalizeArticles decodes an article batch in input order, keeping at most limit
// entries when limit is positive. Text fields are passed through untouched.
func NormalizeArticles(payload Payload, limit int) []Article {
	elements := payloadElements(payload)
	articles := make([]Article, 0, len(elements))
	for _, element := range elements {
		if limit > 0 && len(articles) == limit {
			break
		}
		if firstByte(element) != '{' {
			continue
		}
		var w articleWire
		if json.Unmarshal(element, &w) != nil {
			continue
		}
		articles = append(articles, Article{
			ID:       idOrNew(w.ID),
			Title:    string(w.Title),
			Summary:  string(w.Summary),
			Content:  string(w.Content),
			Category: string(w.Category),
			ReadTime: string(w.ReadTime),
			ImageURL: string(w.ImageURL),
		})
	}
	return articles
}

func referenceFor(refs []GroundingReference, index int) (GroundingReference, bool) {
	if len(refs) == 0 {
		return GroundingReference{}, false
	}
	return refs[index%len(refs)], true
}

// resolveLinks returns (sourceURL, mapURL). A web URI is only ever a source link.
func resolveLinks(ref GroundingReference, hasRef bool, name, address string) (string, string) {
	var sourceURL, mapURL string
	if hasRef {
		sourceURL = ref.WebURI
		mapURL = ref.MapURI
	}
	if mapURL == "" && strings.TrimSpace(address) != "" {
		mapURL = MapSearchURL(name, address)
	}
	return sourceURL, mapURL
}

// MapSearchURL builds a maps search link for "name address".
func MapSearchURL(name, address string) string {
	query := url.Values{}
	query.Set("api", "1")
	query.Set("query", strings.TrimSpace(name+" "+address))
	return mapsSearchBase + "?" + query.Encode()
}

// mapQueryAddress is the address used for a synthesized map link; without a
// chamber address it falls back to "location, city".
func (p Practitioner) mapQueryAddress() string {
	if p.Address != "" {
		return p.Address
	}
	return joinNonEmpty(", ", p.Location, p.City)
}

func (w practitionerWire) toPractitioner() Practitioner {
	return Practitioner{
		ID:            idOrNew(w.ID),
		Name:          string(w.Name),
		Specialty:     string(w.Specialty),
		Qualification: string(w.Qualification),
		Location:      string(w.Location),
		City:          string(w.City),
		Address:       string(w.Address),
		Experience:    string(w.Experience),
		VisitingHours: string(w.VisitingHours),
		Fee:           string(w.Fee),
		ContactInfo:   string(w.ContactInfo),
		Rating:        string(w.Rating),
		ReviewCount:   int(w.ReviewCount),
		Gender:        string(w.Gender),
		IsVerified:    bool(w.IsVerified),
		Languages:     []string(w.Languages),
		NextAvailable: string(w.NextAvailable),
	}
}

func (w facilityWire) toFacility() Facility {
	departments := []string(w.Departments)
	if departments == nil {
		departments = []string{}
	}
	return Facility{
		ID:                 idOrNew(w.ID),
		Name:               string(w.Name),
		Address:            string(w.Address),
		Phone:              string(w.Phone),
		EmergencyPhone:     string(w.EmergencyPhone),
		Departments:        departments,
		Features:           []string(w.Features),
		VisitingHours:      string(w.VisitingHours),
		Rating:             string(w.Rating),
		Website:            string(w.Website),
		TotalBeds:          string(w.TotalBeds),
		AmbulanceAvailable: bool(w.AmbulanceAvailable),
	}
}

func (w serviceWire) toService(searchType SearchType) GenericService {
	kind := string(w.Type)
	if kind == "" {
		kind = string(searchType)
	}
	return GenericService{
		ID:                idOrNew(w.ID),
		Name:              string(w.Name),
		Type:              kind,
		Address:           string(w.Address),
		Phone:             string(w.Phone),
		IsOpen24Hours:     bool(w.IsOpen24Hours),
		DeliveryAvailable: bool(w.DeliveryAvailable),
	}
}

func idOrNew(id looseString) string {
	if clean := strings.TrimSpace(string(id)); clean != "" && clean != "uuid" {
		return clean
	}
	return uuid.NewString()
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return strings.Join(out, sep)
}
