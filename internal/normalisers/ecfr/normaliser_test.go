package ecfr

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

func itemFromJSON(t *testing.T, text string) domain.RawItem {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &m))
	return domain.RawItem(m)
}

func TestNormaliseItem_Defaults(t *testing.T) {
	doc := NormaliseItem(domain.RawItem{})

	assert.Empty(t, doc.DocumentNumber)
	assert.Empty(t, doc.Title)
	assert.Equal(t, domain.UnknownAgency, doc.AgencyName)
	assert.Equal(t, domain.UnknownType, doc.Type)
	assert.Empty(t, doc.Citation)
	assert.Nil(t, doc.PublicationDate)
}

func TestNormaliseItem_NilItem(t *testing.T) {
	doc := NormaliseItem(nil)
	assert.Equal(t, domain.UnknownAgency, doc.AgencyName)
	assert.Equal(t, domain.UnknownType, doc.Type)
}

func TestNormaliseItem_DocumentNumberFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"document_number wins", `{"document_number": "A1", "object_id": "X9"}`, "A1"},
		{"camelCase fallback", `{"documentNumber": "B2"}`, "B2"},
		{"doc_number fallback", `{"doc_number": "C3"}`, "C3"},
		{"object_id last", `{"object_id": "D4"}`, "D4"},
		{"numeric id stringified", `{"object_id": 1234}`, "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NormaliseItem(itemFromJSON(t, tt.raw))
			assert.Equal(t, tt.want, doc.DocumentNumber)
		})
	}
}

func TestNormaliseItem_TitlePrefersHeadings(t *testing.T) {
	doc := NormaliseItem(itemFromJSON(t, `{
		"headings": {"section": "Reporting requirements", "part": "Part 42"},
		"title": "26",
		"section_id": "s-42.1"
	}`))
	assert.Equal(t, "Reporting requirements", doc.Title)

	doc = NormaliseItem(itemFromJSON(t, `{
		"headings": {"part": "Part 42"},
		"title": "flat title"
	}`))
	assert.Equal(t, "Part 42", doc.Title)

	doc = NormaliseItem(itemFromJSON(t, `{"heading": "Flat heading"}`))
	assert.Equal(t, "Flat heading", doc.Title)
}

func TestNormaliseItem_AgencyPriority(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			// Heading chapter wins over a numeric agency code.
			"chapter beats numeric agency",
			`{"headings": {"chapter": "Federal Reserve"}, "agency": "12"}`,
			"Federal Reserve",
		},
		{
			"headings title second",
			`{"headings": {"title": "Banks and Banking"}, "agency": "Treasury"}`,
			"Banks and Banking",
		},
		{
			"first comma token of agency_names",
			`{"agency_names": "Treasury Department, Fiscal Service"}`,
			"Treasury Department",
		},
		{
			"numeric agency_names rejected, agencies used",
			`{"agency_names": "42", "agencies": "Commerce Department"}`,
			"Commerce Department",
		},
		{
			// Title-map fallback when only structural hierarchy exists.
			"hierarchy title mapped",
			`{"hierarchy": {"title": "26"}}`,
			"Internal Revenue",
		},
		{
			"hierarchy title synthesised",
			`{"hierarchy": {"title": "77"}}`,
			"Title 77",
		},
		{
			"hierarchy numeric value",
			`{"hierarchy": {"title": 26}}`,
			"Internal Revenue",
		},
		{
			"agency object name",
			`{"agency": {"name": "Department of Energy"}}`,
			"Department of Energy",
		},
		{
			"agency plain string",
			`{"agency": "Department of Labor"}`,
			"Department of Labor",
		},
		{
			"parent_agency last resort",
			`{"agency": "7", "parent_agency": "Department of Agriculture"}`,
			"Department of Agriculture",
		},
		{
			"numeric parent rejected",
			`{"parent_agency": "3"}`,
			domain.UnknownAgency,
		},
		{
			"nothing resolvable",
			`{"title": "some title"}`,
			domain.UnknownAgency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NormaliseItem(itemFromJSON(t, tt.raw))
			assert.Equal(t, tt.want, doc.AgencyName)
		})
	}
}

func TestNormaliseItem_Citation(t *testing.T) {
	doc := NormaliseItem(itemFromJSON(t, `{
		"hierarchy_headings": {"title": "Title 12", "part": "Part 201", "section": "§ 201.4"},
		"citation": "12 CFR 201.4"
	}`))
	assert.Equal(t, "Title 12 Part 201 § 201.4", doc.Citation)

	doc = NormaliseItem(itemFromJSON(t, `{
		"hierarchy_headings": {"part": "Part 201"}
	}`))
	assert.Equal(t, "Part 201", doc.Citation)

	doc = NormaliseItem(itemFromJSON(t, `{"citation": "12 CFR 201.4"}`))
	assert.Equal(t, "12 CFR 201.4", doc.Citation)

	doc = NormaliseItem(itemFromJSON(t, `{"cfr_reference": "26 CFR 1.61"}`))
	assert.Equal(t, "26 CFR 1.61", doc.Citation)
}

func TestNormaliseItem_URL(t *testing.T) {
	doc := NormaliseItem(itemFromJSON(t, `{"html_url": "https://a", "url": "https://b"}`))
	assert.Equal(t, "https://a", doc.URL)

	doc = NormaliseItem(itemFromJSON(t, `{"url": "https://b"}`))
	assert.Equal(t, "https://b", doc.URL)
}

func TestNormaliseItem_PublicationDate(t *testing.T) {
	doc := NormaliseItem(itemFromJSON(t, `{"starts_on": "2024-03-15"}`))
	require.NotNil(t, doc.PublicationDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *doc.PublicationDate)

	doc = NormaliseItem(itemFromJSON(t, `{"publication_date": "2023-01-02T10:30:00Z"}`))
	require.NotNil(t, doc.PublicationDate)

	// The first present field is authoritative: a bad starts_on leaves
	// the date unset even when a later candidate would parse.
	doc = NormaliseItem(itemFromJSON(t, `{"starts_on": "not a date", "date": "2024-01-01"}`))
	assert.Nil(t, doc.PublicationDate)

	doc = NormaliseItem(itemFromJSON(t, `{}`))
	assert.Nil(t, doc.PublicationDate)
}

func TestNormaliseItem_TypeFallbacks(t *testing.T) {
	doc := NormaliseItem(itemFromJSON(t, `{"type": "Rule"}`))
	assert.Equal(t, "Rule", doc.Type)

	doc = NormaliseItem(itemFromJSON(t, `{"document_type": "Notice"}`))
	assert.Equal(t, "Notice", doc.Type)

	doc = NormaliseItem(itemFromJSON(t, `{}`))
	assert.Equal(t, domain.UnknownType, doc.Type)
}

func TestNormaliseItem_WrongTypedFieldsTreatedAbsent(t *testing.T) {
	// Object- and array-typed values must not leak JSON structure into
	// string fields.
	doc := NormaliseItem(itemFromJSON(t, `{
		"document_number": {"nested": true},
		"title": ["a", "b"],
		"type": {}
	}`))
	assert.Empty(t, doc.DocumentNumber)
	assert.Empty(t, doc.Title)
	assert.Equal(t, domain.UnknownType, doc.Type)
}

func TestIsPureInteger(t *testing.T) {
	assert.True(t, isPureInteger("12"))
	assert.True(t, isPureInteger("0"))
	assert.False(t, isPureInteger(""))
	assert.False(t, isPureInteger("12a"))
	assert.False(t, isPureInteger("-12"))
	assert.False(t, isPureInteger("1.5"))
	assert.False(t, isPureInteger("Federal Reserve"))
}
