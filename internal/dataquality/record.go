package dataquality

import "time"

// Record is one canonical business record. Values are typed: string,
// float64, time.Time, or nil for absent. Downstream consumers go through the
// accessors rather than type-asserting inline.
type Record map[string]interface{}

// Text returns the string value of a field, false when the field is absent
// or not textual.
func (r Record) Text(field string) (string, bool) {
	s, ok := r[field].(string)
	return s, ok
}

// Number returns the numeric value of a field, false when absent.
func (r Record) Number(field string) (float64, bool) {
	f, ok := r[field].(float64)
	return f, ok
}

// Date returns the timestamp value of a field, false when absent.
func (r Record) Date(field string) (time.Time, bool) {
	t, ok := r[field].(time.Time)
	return t, ok
}

// Has reports whether a field is present and non-absent.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}
