package agent

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"board-insights/internal/analyzer"
	"board-insights/internal/dataquality"
	"board-insights/internal/query"
)

var moneyPrinter = message.NewPrinter(language.English)

// Overridable for deterministic year-to-date figures in tests.
var timeNow = time.Now

func money(v float64) string {
	return moneyPrinter.Sprintf("$%.0f", v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// qualityDict renders the combined quality report for a response, capping
// warnings at maxWarnings.
func qualityDict(quality dataquality.QualityReport, maxWarnings int) map[string]interface{} {
	warnings := quality.Warnings
	if len(warnings) > maxWarnings {
		warnings = warnings[:maxWarnings]
	}
	return map[string]interface{}{
		"confidence_score": round1(quality.ConfidenceScore()),
		"total_records":    quality.TotalRecords,
		"valid_records":    quality.ValidRecords,
		"warnings":         warnings,
	}
}

func buildPipelineResponse(parsed query.ParsedQuery, deals []dataquality.Record, quality dataquality.QualityReport) *Response {
	m := analyzer.AnalyzePipeline(deals, parsed.Sector)

	var summary string
	if parsed.Sector != "" {
		summary = fmt.Sprintf("The %s sector pipeline contains %d deals worth %s.",
			parsed.Sector, m.TotalDeals, money(m.TotalPipelineValue))
	} else {
		summary = fmt.Sprintf("Overall pipeline contains %d deals worth %s.",
			m.TotalDeals, money(m.TotalPipelineValue))
	}
	if m.WinRate != nil {
		summary += fmt.Sprintf(" Current win rate is %.1f%%.", *m.WinRate)
	}

	var implications []string
	if m.WinRate != nil && *m.WinRate < 20 {
		implications = append(implications, "Low win rate suggests need for better qualification")
	}
	if m.WeightedPipelineValue < m.TotalPipelineValue*0.3 {
		implications = append(implications, "Many deals in early stages - focus on advancing opportunities")
	}
	if len(implications) == 0 {
		implications = append(implications, "Pipeline is progressing well - maintain current sales activities")
	}

	return &Response{
		ExecutiveSummary: summary,
		KeyMetrics:       m.ToMap(),
		DataQuality:      qualityDict(quality, 3),
		Implications:     implications,
	}
}

func buildRevenueResponse(parsed query.ParsedQuery, deals, workOrders []dataquality.Record, quality dataquality.QualityReport) *Response {
	pipeline := analyzer.AnalyzePipeline(deals, parsed.Sector)
	revenue := analyzer.AnalyzeRevenue(workOrders, parsed.Sector, timeNow())

	// Weighted open pipeline plus committed work order backlog.
	totalForecast := pipeline.WeightedPipelineValue + revenue.ForecastedRevenue

	var summary string
	if parsed.Sector != "" {
		summary = fmt.Sprintf("%s sector revenue forecast: %s ", parsed.Sector, money(totalForecast))
	} else {
		summary = fmt.Sprintf("Total revenue forecast: %s ", money(totalForecast))
	}
	summary += fmt.Sprintf("(%s recognized, %s forecasted).", money(revenue.RecognizedRevenue), money(totalForecast))

	implications := []string{
		fmt.Sprintf("Weighted pipeline of %s provides revenue visibility", money(pipeline.WeightedPipelineValue)),
		fmt.Sprintf("Backlog of %s represents committed work", money(revenue.ForecastedRevenue)),
	}

	return &Response{
		ExecutiveSummary: summary,
		KeyMetrics: map[string]interface{}{
			"pipeline_value":     round2(pipeline.TotalPipelineValue),
			"weighted_pipeline":  round2(pipeline.WeightedPipelineValue),
			"recognized_revenue": round2(revenue.RecognizedRevenue),
			"forecasted_revenue": round2(revenue.ForecastedRevenue),
			"total_forecast":     round2(totalForecast),
			"revenue_by_sector":  revenue.RevenueBySector,
		},
		DataQuality:  qualityDict(quality, 3),
		Implications: implications,
	}
}

func buildExecutionResponse(parsed query.ParsedQuery, workOrders []dataquality.Record, quality dataquality.QualityReport) *Response {
	m := analyzer.AnalyzeExecution(workOrders, parsed.Sector)

	var summary string
	if parsed.Sector != "" {
		summary = fmt.Sprintf("%s sector execution: %d work orders, ", parsed.Sector, m.TotalWorkOrders)
	} else {
		summary = fmt.Sprintf("Overall execution: %d work orders, ", m.TotalWorkOrders)
	}
	summary += fmt.Sprintf("%d completed (%.1f%%), %d in progress.",
		m.CompletedOrders, m.CompletionRate, m.InProgressOrders)

	var implications []string
	switch {
	case m.CompletionRate > 80:
		implications = append(implications, "Excellent execution efficiency - team is performing well")
	case m.CompletionRate > 50:
		implications = append(implications, "Good progress - monitor in-progress items for timely delivery")
	default:
		implications = append(implications, "Execution needs attention - review resource allocation")
	}
	if m.BacklogValue > 0 {
		implications = append(implications, money(m.BacklogValue)+" backlog represents delivery commitment")
	}

	return &Response{
		ExecutiveSummary: summary,
		KeyMetrics:       m.ToMap(),
		DataQuality:      qualityDict(quality, 3),
		Implications:     implications,
	}
}

func buildLeadershipResponse(parsed query.ParsedQuery, deals, workOrders []dataquality.Record, quality dataquality.QualityReport) *Response {
	pipeline := analyzer.AnalyzePipeline(deals, parsed.Sector)
	revenue := analyzer.AnalyzeRevenue(workOrders, parsed.Sector, timeNow())
	execution := analyzer.AnalyzeExecution(workOrders, parsed.Sector)

	summary := analyzer.GenerateLeadershipSummary(pipeline, revenue, execution, quality, parsed.TimeRange)

	execSummary := fmt.Sprintf("Pipeline health: %s. Total pipeline: %s across %d deals. Execution: %.1f%% completion rate.",
		summary.PipelineHealth, money(pipeline.TotalPipelineValue), pipeline.TotalDeals, execution.CompletionRate)

	return &Response{
		ExecutiveSummary: execSummary,
		KeyMetrics:       summary.ToMap(),
		DataQuality:      qualityDict(quality, 5),
		Implications:     append(append([]string{}, summary.Risks...), summary.Opportunities...),
	}
}

func buildCustomResponse(parsed query.ParsedQuery, deals, workOrders []dataquality.Record, quality dataquality.QualityReport) *Response {
	pipeline := analyzer.AnalyzePipeline(deals, parsed.Sector)
	execution := analyzer.AnalyzeExecution(workOrders, parsed.Sector)

	summary := "Based on available data: "
	if pipeline.TotalDeals > 0 {
		summary += fmt.Sprintf("Pipeline has %d deals worth %s. ", pipeline.TotalDeals, money(pipeline.TotalPipelineValue))
	}
	if execution.TotalWorkOrders > 0 {
		summary += fmt.Sprintf("Execution has %d work orders with %.1f%% completion.",
			execution.TotalWorkOrders, execution.CompletionRate)
	}
	if len(deals) == 0 && len(workOrders) == 0 {
		summary = "No data available. Please check your Monday.com connection and board configuration."
	}

	keyMetrics := map[string]interface{}{
		"pipeline":  nil,
		"execution": nil,
	}
	if len(deals) > 0 {
		keyMetrics["pipeline"] = pipeline.ToMap()
	}
	if len(workOrders) > 0 {
		keyMetrics["execution"] = execution.ToMap()
	}

	return &Response{
		ExecutiveSummary: summary,
		KeyMetrics:       keyMetrics,
		DataQuality:      qualityDict(quality, 3),
		Implications:     []string{"For more specific insights, try asking about pipeline, revenue, or execution specifically"},
	}
}
