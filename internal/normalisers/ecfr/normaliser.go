package ecfr

import (
	"strings"
	"time"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

// Date layouts accepted for publication dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NormaliseItem converts one raw search-result item into a Document.
// Every field resolves through an ordered fallback chain; the first
// present, non-empty candidate wins. Nothing here returns an error: a
// field that cannot be resolved keeps its sentinel or zero value.
func NormaliseItem(item domain.RawItem) domain.Document {
	doc := domain.Document{
		AgencyName: domain.UnknownAgency,
		Type:       domain.UnknownType,
	}
	if item == nil {
		return doc
	}

	doc.DocumentNumber = firstString(item,
		"document_number", "documentNumber", "doc_number", "object_id")
	doc.Title = resolveTitle(item)
	doc.AgencyName = resolveAgency(item)
	if t := firstString(item, "type", "document_type"); t != "" {
		doc.Type = t
	}
	doc.Citation = resolveCitation(item)
	doc.URL = firstString(item, "html_url", "url")
	doc.PublicationDate = resolveDate(item)

	return doc
}

// resolveTitle prefers headings-derived values because they carry the
// human-readable section text rather than an identifier.
func resolveTitle(item domain.RawItem) string {
	if headings, ok := item.GetObject("headings"); ok {
		if s, ok := headings.GetString("section"); ok {
			return s
		}
		if s, ok := headings.GetString("part"); ok {
			return s
		}
	}
	return firstString(item, "title", "heading", "section_id")
}

// resolveAgency applies the agency-name heuristic. Priority order, first
// success wins:
//
//  1. headings.chapter — chapters are typically literal agency names
//  2. headings.title
//  3. first comma token of agency_names | agencies | agency, unless the
//     raw value is a pure integer (category code, not a name)
//  4. hierarchy.title mapped through the CFR title table
//  5. agency.name, or agency itself when it is a plain string
//  6. parent_agency
//  7. the UnknownAgency sentinel
func resolveAgency(item domain.RawItem) string {
	if headings, ok := item.GetObject("headings"); ok {
		if s, ok := headings.GetString("chapter"); ok {
			return s
		}
		if s, ok := headings.GetString("title"); ok {
			return s
		}
	}

	for _, field := range []string{"agency_names", "agencies", "agency"} {
		if s, ok := item.GetString(field); ok && !isPureInteger(s) {
			if tok := strings.TrimSpace(strings.Split(s, ",")[0]); tok != "" {
				return tok
			}
		}
	}

	if hierarchy, ok := item.GetObject("hierarchy"); ok {
		if num, ok := hierarchy.GetString("title"); ok {
			return domain.TitleAgency(num)
		}
	}

	if agency, ok := item.GetObject("agency"); ok {
		if s, ok := agency.GetString("name"); ok {
			return s
		}
	}
	if s, ok := item.GetString("agency"); ok && !isPureInteger(s) {
		return s
	}

	if s, ok := item.GetString("parent_agency"); ok && !isPureInteger(s) {
		return s
	}

	return domain.UnknownAgency
}

// resolveCitation concatenates the hierarchy headings (title, part,
// section) when present, falling back to flat citation fields.
func resolveCitation(item domain.RawItem) string {
	if hh, ok := item.GetObject("hierarchy_headings"); ok {
		var parts []string
		for _, field := range []string{"title", "part", "section"} {
			if s, ok := hh.GetString(field); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	return firstString(item, "citation", "cfr_reference")
}

// resolveDate parses the first present date field. A present but
// unparseable value leaves the date unset; later candidates are not
// consulted once a field is present.
func resolveDate(item domain.RawItem) *time.Time {
	for _, field := range []string{"starts_on", "publication_date", "date"} {
		s, ok := item.GetString(field)
		if !ok {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		return nil
	}
	return nil
}

// firstString returns the first present, non-empty string among the
// named fields.
func firstString(item domain.RawItem, fields ...string) string {
	for _, field := range fields {
		if s, ok := item.GetString(field); ok {
			return s
		}
	}
	return ""
}

// isPureInteger reports whether s consists solely of ASCII digits.
// Flat agency fields sometimes carry numeric category codes that must
// not be mistaken for names.
func isPureInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
