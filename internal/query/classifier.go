package query

import (
	"regexp"
	"strings"
)

// Keyword tables are ordered slices scanned by generic routines; on equal
// scores the earlier entry wins, so enumeration order is the tie-break.

type keywordEntry struct {
	label    string
	keywords []string
}

var intentKeywords = []struct {
	queryType QueryType
	keywords  []string
}{
	{QueryTypePipelineOverview, []string{"pipeline", "deals", "sales", "opportunities", "forecast", "funnel", "prospects", "leads", "closed won", "closed lost"}},
	{QueryTypeRevenueForecast, []string{"revenue", "income", "earnings", "money", "financial", "value", "worth", "amount", "booking"}},
	{QueryTypeExecutionStatus, []string{"work order", "project", "delivery", "execution", "operational", "work orders", "projects", "delivered", "completion"}},
	{QueryTypeLeadershipUpdate, []string{"update", "summary", "report", "overview", "status", "leadership", "board", "executive", "kpi", "metrics"}},
}

var timeRangeKeywords = []struct {
	timeRange TimeRange
	keywords  []string
}{
	{TimeRangeThisQuarter, []string{"this quarter", "current quarter", "q1", "q2", "q3", "q4"}},
	{TimeRangeNextQuarter, []string{"next quarter", "upcoming quarter"}},
	{TimeRangeThisYear, []string{"this year", "current year", "ytd", "year to date"}},
	{TimeRangeLastQuarter, []string{"last quarter", "previous quarter", "past quarter"}},
	{TimeRangeLast30Days, []string{"last 30 days", "past 30 days", "last month", "past month"}},
	{TimeRangeLast90Days, []string{"last 90 days", "past 90 days", "last quarter"}},
}

var sectorKeywords = []keywordEntry{
	{"Energy", []string{"energy", "power", "utilities", "oil", "gas", "renewable"}},
	{"Technology", []string{"technology", "tech", "software", "it", "digital"}},
	{"Healthcare", []string{"healthcare", "health", "medical", "pharma"}},
	{"Finance", []string{"finance", "financial", "banking", "fintech"}},
	{"Manufacturing", []string{"manufacturing", "industrial", "production"}},
	{"Retail", []string{"retail", "ecommerce", "consumer"}},
	{"Education", []string{"education", "edtech", "learning"}},
	{"Government", []string{"government", "public sector", "govt"}},
}

var stageKeywords = []keywordEntry{
	{"Lead", []string{"lead", "prospect", "new"}},
	{"Qualified", []string{"qualified", "qualification"}},
	{"Proposal", []string{"proposal", "quoted"}},
	{"Negotiation", []string{"negotiation", "negotiating"}},
	{"Closed Won", []string{"won", "closed won"}},
	{"Closed Lost", []string{"lost", "closed lost"}},
}

var statusKeywords = []keywordEntry{
	{"Planning", []string{"planning", "planned"}},
	{"In Progress", []string{"in progress", "active", "ongoing"}},
	{"Completed", []string{"completed", "done", "finished"}},
	{"On Hold", []string{"on hold", "hold", "paused"}},
}

var metricKeywords = []keywordEntry{
	{"revenue", []string{"revenue", "income", "earnings", "value", "amount"}},
	{"count", []string{"count", "number", "how many", "total"}},
	{"conversion", []string{"conversion", "win rate", "close rate"}},
	{"avg_deal_size", []string{"average", "avg", "deal size"}},
	{"pipeline_value", []string{"pipeline", "forecast"}},
	{"sector_breakdown", []string{"sector", "industry", "breakdown", "by sector"}},
	{"trends", []string{"trend", "growth", "change", "over time"}},
}

var quarterPattern = regexp.MustCompile(`q([1-4])\s*(\d{4})?`)

const (
	clarifyGeneric = "I'm not sure what you're asking. Could you clarify if you're asking about pipeline, revenue, or project execution?"
	clarifyIntent  = "Could you specify if you're asking about sales pipeline, revenue forecast, or work order execution?"
)

// Classify turns a free-text question into a structured query. Pure keyword
// scoring, no external calls; the same input always yields the same result.
func Classify(text string) ParsedQuery {
	lower := strings.ToLower(text)

	queryType, intentMatched := detectQueryType(lower)
	timeRange := detectTimeRange(lower)
	sector := firstMatch(sectorKeywords, lower)

	confidence := 0.5
	if intentMatched {
		confidence += 0.2
	}
	if timeRange != TimeRangeAllTime {
		confidence += 0.15
	}
	if sector != "" {
		confidence += 0.15
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	clarification := ""
	switch {
	case confidence < 0.4:
		clarification = clarifyGeneric
	case !intentMatched:
		clarification = clarifyIntent
	}

	return ParsedQuery{
		OriginalQuery:       text,
		QueryType:           queryType,
		TimeRange:           timeRange,
		Sector:              sector,
		StageFilter:         firstMatch(stageKeywords, lower),
		StatusFilter:        firstMatch(statusKeywords, lower),
		MetricsRequested:    detectMetrics(lower),
		Confidence:          confidence,
		ClarificationNeeded: clarification,
	}
}

// detectQueryType scores each intent by keyword hits; the strictly highest
// score wins and ties keep the earliest entry. No hits at all means the
// question is a custom query.
func detectQueryType(lower string) (QueryType, bool) {
	best := QueryTypeCustom
	bestScore := 0
	for _, entry := range intentKeywords {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.queryType
		}
	}
	return best, bestScore > 0
}

func detectTimeRange(lower string) TimeRange {
	for _, entry := range timeRangeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.timeRange
			}
		}
	}

	if quarterPattern.MatchString(lower) {
		return TimeRangeCustom
	}

	return TimeRangeAllTime
}

func firstMatch(table []keywordEntry, lower string) string {
	for _, entry := range table {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.label
			}
		}
	}
	return ""
}

// detectMetrics is non-exclusive: every metric whose keywords appear is
// requested. Questions naming none default to count and revenue.
func detectMetrics(lower string) []string {
	var metrics []string
	for _, entry := range metricKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				metrics = append(metrics, entry.label)
				break
			}
		}
	}

	if len(metrics) == 0 {
		return []string{"count", "revenue"}
	}
	return metrics
}
