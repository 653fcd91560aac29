package directory

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func mustExtract(t *testing.T, body string) Payload {
	t.Helper()
	payload := Extract("```json\n" + body + "\n```")
	require.False(t, payload.IsEmpty())
	return payload
}

func TestNormalizePractitionersWithMapReference(t *testing.T) {
	payload := mustExtract(t, `[{"name":"Dr. A","specialty":"Cardiology","location":"Square Hospital","city":"Dhaka","contactInfo":"01700000000","isVerified":true}]`)
	refs := []GroundingReference{{MapURI: "https://maps.google.com/?cid=1"}}

	result := Normalize(payload, refs, SearchTypeDoctor)
	require.Len(t, result.Practitioners, 1)
	require.Empty(t, result.Facilities)
	require.Empty(t, result.Services)

	doc := result.Practitioners[0]
	require.Equal(t, "Dr. A", doc.Name)
	require.Equal(t, "https://maps.google.com/?cid=1", doc.MapURL)
	require.Empty(t, doc.SourceURL)
	require.True(t, doc.IsVerified)
	_, err := uuid.Parse(doc.ID)
	require.NoError(t, err)
}

func TestNormalizeWebReferenceIsNeverMapLink(t *testing.T) {
	payload := mustExtract(t, `[{"name":"City Pharmacy","address":"Road 5, Dhanmondi"}]`)
	refs := []GroundingReference{{WebURI: "https://example.com/pharmacy"}}

	result := Normalize(payload, refs, SearchTypePharmacy)
	require.Len(t, result.Services, 1)
	svc := result.Services[0]
	require.Equal(t, "https://example.com/pharmacy", svc.SourceURL)
	require.Equal(t, MapSearchURL("City Pharmacy", "Road 5, Dhanmondi"), svc.MapURL)
	require.NotEqual(t, svc.SourceURL, svc.MapURL)
	require.Equal(t, string(SearchTypePharmacy), svc.Type)
}

func TestNormalizeSynthesizesMapLinkWithoutReferences(t *testing.T) {
	payload := mustExtract(t, `[{"name":"Dhaka Medical College Hospital","address":"Secretariat Rd, Dhaka"}]`)

	result := Normalize(payload, nil, SearchTypeHospital)
	require.Len(t, result.Facilities, 1)
	hospital := result.Facilities[0]
	require.Empty(t, hospital.SourceURL)
	require.True(t, strings.HasPrefix(hospital.MapURL, "https://www.google.com/maps/search/?"))
	require.Contains(t, hospital.MapURL, url.QueryEscape("Dhaka Medical College Hospital Secretariat Rd, Dhaka"))
	require.Equal(t, []string{}, hospital.Departments)
}

func TestNormalizeNoAddressNoMapLink(t *testing.T) {
	payload := mustExtract(t, `[{"name":"Unknown Ambulance"}]`)
	result := Normalize(payload, nil, SearchTypeAmbulance)
	require.Len(t, result.Services, 1)
	require.Empty(t, result.Services[0].MapURL)
}

func TestNormalizeCyclesReferencesByIndex(t *testing.T) {
	payload := mustExtract(t, `[{"name":"A","address":"x"},{"name":"B","address":"y"},{"name":"C","address":"z"}]`)
	refs := []GroundingReference{
		{WebURI: "https://one.example"},
		{WebURI: "https://two.example"},
	}
	result := Normalize(payload, refs, SearchTypeOxygen)
	require.Len(t, result.Services, 3)
	require.Equal(t, "https://one.example", result.Services[0].SourceURL)
	require.Equal(t, "https://two.example", result.Services[1].SourceURL)
	require.Equal(t, "https://one.example", result.Services[2].SourceURL)
}

func TestNormalizeSkippedElementsConsumeIndex(t *testing.T) {
	payload := mustExtract(t, `[{"name":"A"}, 42, null, {"name":"D"}]`)
	refs := []GroundingReference{
		{WebURI: "https://0.example"},
		{WebURI: "https://1.example"},
		{WebURI: "https://2.example"},
		{WebURI: "https://3.example"},
	}
	result := Normalize(payload, refs, SearchTypeDoctor)
	require.Len(t, result.Practitioners, 2)
	require.Equal(t, "https://0.example", result.Practitioners[0].SourceURL)
	require.Equal(t, "https://3.example", result.Practitioners[1].SourceURL)
}

func TestNormalizeLoneObjectAndEmpty(t *testing.T) {
	payload := mustExtract(t, `{"name":"Solo Hospital","address":"Rajshahi"}`)
	result := Normalize(payload, nil, SearchTypeHospital)
	require.Len(t, result.Facilities, 1)

	require.Zero(t, Normalize(Payload{}, nil, SearchTypeHospital).Len())
	require.Zero(t, Normalize(mustExtract(t, `"text"`), nil, SearchTypeHospital).Len())
	require.Zero(t, Normalize(payload, nil, "dentist").Len())
}

func TestNormalizeCoercesLooseFields(t *testing.T) {
	payload := mustExtract(t, `[{"id":"doc-7","name":"Dr. B","rating":4.6,"reviewCount":"1,200+","isVerified":"yes","languages":"English, Bangla","location":"Labaid","city":"Dhaka"}]`)
	result := Normalize(payload, nil, SearchTypeDoctor)
	require.Len(t, result.Practitioners, 1)
	doc := result.Practitioners[0]
	require.Equal(t, "doc-7", doc.ID)
	require.Equal(t, "4.6", doc.Rating)
	require.Equal(t, 1200, doc.ReviewCount)
	require.True(t, doc.IsVerified)
	require.Equal(t, []string{"English", "Bangla"}, doc.Languages)
	require.Empty(t, doc.Address)
	require.Equal(t, MapSearchURL("Dr. B", "Labaid, Dhaka"), doc.MapURL)
}

func TestNormalizeKeepsPractitionerAddressAsGiven(t *testing.T) {
	payload := mustExtract(t, `[{"name":"Dr. C","address":"House 12, Road 5","location":"Dhanmondi","city":"Dhaka"}]`)
	doc := Normalize(payload, nil, SearchTypeDoctor).Practitioners[0]
	require.Equal(t, "House 12, Road 5", doc.Address)
	require.Equal(t, MapSearchURL("Dr. C", "House 12, Road 5"), doc.MapURL)
}

func TestNormalizeReplacesPlaceholderIDs(t *testing.T) {
	payload := mustExtract(t, `[{"id":"uuid","name":"A"},{"id":"uuid","name":"B"}]`)
	result := Normalize(payload, nil, SearchTypeHospital)
	require.Len(t, result.Facilities, 2)
	require.NotEqual(t, "uuid", result.Facilities[0].ID)
	require.NotEqual(t, result.Facilities[0].ID, result.Facilities[1].ID)
}

func TestNormalizeArticlesKeepsOrderAndLimit(t *testing.T) {
	payload := mustExtract(t, `[{"id":"1","title":"Hydration"},{"id":"2","title":"Heatstroke"},"skip",{"id":"3","title":"Sleep"}]`)
	articles := NormalizeArticles(payload, 2)
	require.Len(t, articles, 2)
	require.Equal(t, "Hydration", articles[0].Title)
	require.Equal(t, "Heatstroke", articles[1].Title)

	all := NormalizeArticles(payload, 0)
	require.Len(t, all, 3)
	require.Equal(t, "Sleep", all[2].Title)

	require.Empty(t, NormalizeArticles(Payload{}, 6))
}
