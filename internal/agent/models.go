package agent

// Response is the structured answer to a business question: a prose summary,
// the metrics behind it, the data quality they rest on, and what to do next.
type Response struct {
	ExecutiveSummary string                 `json:"executive_summary"`
	KeyMetrics       map[string]interface{} `json:"key_metrics"`
	DataQuality      map[string]interface{} `json:"data_quality"`
	Implications     []string               `json:"implications"`
}
