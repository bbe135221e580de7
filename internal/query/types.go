package query

// QueryType is the structured intent behind a business question.
type QueryType string

const (
	QueryTypePipelineOverview QueryType = "pipeline_overview"
	QueryTypeRevenueForecast  QueryType = "revenue_forecast"
	QueryTypeExecutionStatus  QueryType = "execution_status"
	QueryTypeLeadershipUpdate QueryType = "leadership_update"
	QueryTypeCustom           QueryType = "custom_query"
)

// TimeRange is the reporting window a question refers to.
type TimeRange string

const (
	TimeRangeThisQuarter TimeRange = "this_quarter"
	TimeRangeNextQuarter TimeRange = "next_quarter"
	TimeRangeThisYear    TimeRange = "this_year"
	TimeRangeLastQuarter TimeRange = "last_quarter"
	TimeRangeLast30Days  TimeRange = "last_30_days"
	TimeRangeLast90Days  TimeRange = "last_90_days"
	TimeRangeCustom      TimeRange = "custom"
	TimeRangeAllTime     TimeRange = "all_time"
)

// ParsedQuery is the structured form of a free-text question. Confidence is
// in [0.5, 1.0]; ClarificationNeeded is empty when the question is actionable
// as-is.
type ParsedQuery struct {
	OriginalQuery       string    `json:"original_query"`
	QueryType           QueryType `json:"query_type"`
	TimeRange           TimeRange `json:"time_range"`
	Sector              string    `json:"sector,omitempty"`
	StageFilter         string    `json:"stage_filter,omitempty"`
	StatusFilter        string    `json:"status_filter,omitempty"`
	MetricsRequested    []string  `json:"metrics_requested"`
	Confidence          float64   `json:"confidence"`
	ClarificationNeeded string    `json:"clarification_needed,omitempty"`
}
