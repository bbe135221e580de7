package dataquality

import (
	"encoding/json"
	"strings"

	"board-insights/internal/monday"
)

// FieldMap binds one canonical field name to the external column title it is
// sourced from.
type FieldMap struct {
	Field  string
	Column string
}

// FieldMapping is the ordered set of field bindings for one record family.
type FieldMapping []FieldMap

// TransformItems converts raw board items into canonical records, one per
// item, preserving input order. Each mapped field is routed to a normalizer
// chosen from the field name; failures yield absent values, never dropped
// records.
func TransformItems(items []monday.Item, mapping FieldMapping) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		rec := Record{
			"id":         absentIfEmpty(item.ID),
			"name":       absentIfEmpty(item.Name),
			"created_at": absentIfEmpty(item.CreatedAt),
			"updated_at": absentIfEmpty(item.UpdatedAt),
		}

		for _, fm := range mapping {
			rec[fm.Field] = normalizeField(fm.Field, columnValue(item, fm.Column))
		}

		records = append(records, rec)
	}
	return records
}

func absentIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// columnValue finds the raw scalar for a column by case-insensitive title
// match, preferring the display text over the serialized payload. JSON
// payloads are unwrapped to their "text" or "label" sub-field when present.
func columnValue(item monday.Item, title string) interface{} {
	for _, cv := range item.ColumnValues {
		if !strings.EqualFold(cv.Column.Title, title) {
			continue
		}

		value := cv.Text
		if value == "" {
			value = cv.Value
		}
		if value == "" {
			return nil
		}

		if strings.HasPrefix(value, "{") {
			var obj map[string]interface{}
			if err := json.Unmarshal([]byte(value), &obj); err == nil {
				if s, ok := obj["text"].(string); ok {
					return s
				}
				if s, ok := obj["label"].(string); ok {
					return s
				}
			}
		}

		return value
	}
	return nil
}

// normalizeField picks the normalizer from the canonical field name:
// date fields by the "date" substring, numeric fields by amount/value/
// revenue/cost/price, then sector and status families, plain text otherwise.
func normalizeField(field string, raw interface{}) interface{} {
	lower := strings.ToLower(field)

	switch {
	case strings.Contains(lower, "date"):
		if t, ok := ParseDate(raw); ok {
			return t
		}
	case containsAny(lower, "amount", "value", "revenue", "cost", "price"):
		if f, ok := ParseNumeric(raw); ok {
			return f
		}
	case strings.Contains(lower, "sector") || strings.Contains(lower, "industry"):
		if s, ok := NormalizeSector(raw); ok {
			return s
		}
	case containsAny(lower, "status", "stage", "state"):
		if s, ok := NormalizeStatus(raw); ok {
			return s
		}
	default:
		if s, ok := NormalizeText(raw); ok {
			return s
		}
	}
	return nil
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
