package dataquality

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Layouts tried in order for date parsing. First successful parse wins, so
// US month-first notation takes precedence over day-first for ambiguous input.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2-Jan-2006",
	"01-02-2006",
}

// Characters stripped before numeric parsing. Commas are kept so grouped
// values like "$1,234" fail the final parse and come out absent rather than
// silently misparsed.
var nonNumericPattern = regexp.MustCompile(`[^\d.,\-]`)

var textSentinels = map[string]struct{}{
	"":     {},
	"null": {},
	"none": {},
	"n/a":  {},
	"na":   {},
	"-":    {},
}

var titleCaser = cases.Title(language.English)

// ParseDate coerces a loosely formatted scalar into a timestamp. Returns
// false when the value is absent or matches no known layout.
func ParseDate(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, true
	}

	s := strings.TrimSpace(cast.ToString(value))
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// Generic ISO-8601 fallback, accepting a trailing UTC marker or offset.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}

	return time.Time{}, false
}

// ParseNumeric coerces a scalar into a finite float. Currency symbols and
// surrounding noise are stripped; NaN and infinities are rejected.
func ParseNumeric(value interface{}) (float64, bool) {
	if value == nil {
		return 0, false
	}

	if _, isStr := value.(string); !isStr {
		if f, err := cast.ToFloat64E(value); err == nil {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, false
			}
			return f, true
		}
		return 0, false
	}

	s := strings.TrimSpace(value.(string))
	if s == "" {
		return 0, false
	}

	cleaned := nonNumericPattern.ReplaceAllString(s, "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// NormalizeText trims a scalar and filters placeholder junk ("null", "n/a",
// "-", ...). Returns false for absent values.
func NormalizeText(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}

	s := strings.TrimSpace(cast.ToString(value))
	if _, junk := textSentinels[strings.ToLower(s)]; junk {
		return "", false
	}

	return s, true
}

type category struct {
	label    string
	keywords []string
}

var sectorCategories = []category{
	{"Energy", []string{"energy", "power", "utilities", "oil", "gas", "renewable"}},
	{"Technology", []string{"tech", "technology", "software", "it", "digital", "saas"}},
	{"Healthcare", []string{"health", "healthcare", "medical", "pharma", "biotech"}},
	{"Finance", []string{"finance", "financial", "banking", "fintech", "insurance"}},
	{"Manufacturing", []string{"manufacturing", "industrial", "production", "factory"}},
	{"Retail", []string{"retail", "ecommerce", "e-commerce", "consumer"}},
	{"Education", []string{"education", "edtech", "learning", "training"}},
	{"Government", []string{"government", "public sector", "govt", "municipal"}},
}

var statusCategories = []category{
	{"Lead", []string{"lead", "prospect", "new"}},
	{"Qualified", []string{"qualified", "qualification"}},
	{"Proposal", []string{"proposal", "quoted", "quote"}},
	{"Negotiation", []string{"negotiation", "negotiating"}},
	{"Closed Won", []string{"won", "closed won", "closed-won", "deal won"}},
	{"Closed Lost", []string{"lost", "closed lost", "closed-lost", "deal lost"}},
	{"Planning", []string{"planning", "planned"}},
	{"In Progress", []string{"in progress", "active", "ongoing", "started"}},
	{"Completed", []string{"completed", "done", "finished"}},
	{"On Hold", []string{"on hold", "hold", "paused"}},
	{"Cancelled", []string{"cancelled", "canceled"}},
}

func matchCategory(table []category, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, c := range table {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.label, true
			}
		}
	}
	return "", false
}

// NormalizeSector maps free-text industry labels onto one of eight canonical
// sectors. Unrecognized values pass through title-cased.
func NormalizeSector(value interface{}) (string, bool) {
	text, ok := NormalizeText(value)
	if !ok {
		return "", false
	}

	if label, matched := matchCategory(sectorCategories, text); matched {
		return label, true
	}
	return titleCaser.String(strings.ToLower(text)), true
}

// NormalizeStatus maps free-text stage/status labels onto the canonical
// lifecycle vocabulary. Sales stages are matched before delivery statuses, so
// "deal won" never lands in a delivery bucket. Unrecognized values pass
// through title-cased.
func NormalizeStatus(value interface{}) (string, bool) {
	text, ok := NormalizeText(value)
	if !ok {
		return "", false
	}

	if label, matched := matchCategory(statusCategories, text); matched {
		return label, true
	}
	return titleCaser.String(strings.ToLower(text)), true
}
