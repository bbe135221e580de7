package dataquality

// QualityReport summarizes data quality issues found while processing one or
// more record families. It is produced as a fold over the input and never
// mutated after being returned.
type QualityReport struct {
	TotalRecords    int            `json:"total_records"`
	ValidRecords    int            `json:"valid_records"`
	MissingValues   map[string]int `json:"missing_values"`
	InvalidFormats  map[string]int `json:"invalid_formats"`
	ExcludedRecords int            `json:"excluded_records"`
	Warnings        []string       `json:"warnings"`
}

// NewEmptyReport returns a zero-count report carrying the given warnings.
func NewEmptyReport(warnings ...string) QualityReport {
	return QualityReport{
		MissingValues:  map[string]int{},
		InvalidFormats: map[string]int{},
		Warnings:       warnings,
	}
}

// ConfidenceScore is the percentage of input records that passed validation,
// 0 when the report covers no records.
func (r QualityReport) ConfidenceScore() float64 {
	if r.TotalRecords == 0 {
		return 0.0
	}
	return float64(r.ValidRecords) / float64(r.TotalRecords) * 100
}

// MergeReports combines two family reports by summing counts and
// concatenating warnings, preserving order (first report's warnings first).
func MergeReports(a, b QualityReport) QualityReport {
	merged := QualityReport{
		TotalRecords:    a.TotalRecords + b.TotalRecords,
		ValidRecords:    a.ValidRecords + b.ValidRecords,
		MissingValues:   map[string]int{},
		InvalidFormats:  map[string]int{},
		ExcludedRecords: a.ExcludedRecords + b.ExcludedRecords,
	}

	for field, n := range a.MissingValues {
		merged.MissingValues[field] += n
	}
	for field, n := range b.MissingValues {
		merged.MissingValues[field] += n
	}
	for field, n := range a.InvalidFormats {
		merged.InvalidFormats[field] += n
	}
	for field, n := range b.InvalidFormats {
		merged.InvalidFormats[field] += n
	}

	merged.Warnings = append(merged.Warnings, a.Warnings...)
	merged.Warnings = append(merged.Warnings, b.Warnings...)

	return merged
}
