package dataquality

// Validate partitions records on required-field presence. A record is
// accepted iff every required field is present and non-absent; rejected
// records are counted, never silently dropped. Accepted count plus excluded
// count always equals the input count.
func Validate(records []Record, requiredFields []string) ([]Record, QualityReport) {
	report := QualityReport{
		TotalRecords:   len(records),
		MissingValues:  map[string]int{},
		InvalidFormats: map[string]int{},
	}

	accepted := make([]Record, 0, len(records))
	for _, rec := range records {
		var missing []string
		for _, field := range requiredFields {
			if !rec.Has(field) {
				missing = append(missing, field)
			}
		}

		if len(missing) == 0 {
			accepted = append(accepted, rec)
			report.ValidRecords++
			continue
		}

		report.ExcludedRecords++
		for _, field := range missing {
			report.MissingValues[field]++
			report.Warnings = append(report.Warnings, "Missing required field: "+field)
		}
	}

	return accepted, report
}
