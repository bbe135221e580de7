package analyzer

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"board-insights/internal/dataquality"
	"board-insights/internal/query"
)

var periodLabels = map[query.TimeRange]string{
	query.TimeRangeThisQuarter: "This Quarter",
	query.TimeRangeLastQuarter: "Last Quarter",
	query.TimeRangeThisYear:    "This Year",
	query.TimeRangeNextQuarter: "Next Quarter",
	query.TimeRangeLast30Days:  "Last 30 Days",
	query.TimeRangeLast90Days:  "Last 90 Days",
	query.TimeRangeAllTime:     "All Time",
}

var moneyPrinter = message.NewPrinter(language.English)

func money(v float64) string {
	return moneyPrinter.Sprintf("$%.0f", v)
}

// GenerateLeadershipSummary folds all three metric families into an
// executive digest: a health rating, up to four highlights, and risk and
// opportunity call-outs with safe defaults.
func GenerateLeadershipSummary(
	pipeline PipelineMetrics,
	revenue RevenueMetrics,
	execution ExecutionMetrics,
	quality dataquality.QualityReport,
	timeRange query.TimeRange,
) LeadershipSummary {
	period, ok := periodLabels[timeRange]
	if !ok {
		period = "Custom Period"
	}

	return LeadershipSummary{
		Period:         period,
		PipelineHealth: assessPipelineHealth(pipeline),
		KeyHighlights:  buildHighlights(pipeline, revenue, execution),
		Risks:          buildRisks(pipeline, execution, quality.ConfidenceScore()),
		Opportunities:  buildOpportunities(pipeline),
		Pipeline:       pipeline,
		Revenue:        revenue,
		Execution:      execution,
		DataQuality:    quality,
	}
}

// assessPipelineHealth scores the pipeline on win rate, total value, and
// deal size, then maps the score onto three bands. An empty pipeline is
// "No Data", not a bad rating.
func assessPipelineHealth(pipeline PipelineMetrics) string {
	if pipeline.TotalDeals == 0 {
		return "No Data"
	}

	score := 0

	if wr := pipeline.WinRate; wr != nil && *wr > 0 {
		if *wr > 30 {
			score += 2
		} else if *wr > 15 {
			score++
		}
	}

	if pipeline.TotalPipelineValue > 1_000_000 {
		score += 2
	} else if pipeline.TotalPipelineValue > 500_000 {
		score++
	}

	if pipeline.AvgDealSize > 50_000 {
		score++
	}

	switch {
	case score >= 4:
		return "Strong"
	case score >= 2:
		return "Healthy"
	default:
		return "Needs Attention"
	}
}

func buildHighlights(pipeline PipelineMetrics, revenue RevenueMetrics, execution ExecutionMetrics) []string {
	var highlights []string

	if pipeline.TotalPipelineValue > 0 {
		highlights = append(highlights, fmt.Sprintf("Pipeline value: %s (%d deals)",
			money(pipeline.TotalPipelineValue), pipeline.TotalDeals))
	}
	if wr := pipeline.WinRate; wr != nil && *wr > 0 {
		highlights = append(highlights, fmt.Sprintf("Win rate: %.1f%%", *wr))
	}
	if revenue.RecognizedRevenue > 0 {
		highlights = append(highlights, "Recognized revenue: "+money(revenue.RecognizedRevenue))
	}
	if execution.CompletionRate > 0 {
		highlights = append(highlights, fmt.Sprintf("Project completion rate: %.1f%%", execution.CompletionRate))
	}

	if len(highlights) > 4 {
		highlights = highlights[:4]
	}
	return highlights
}

func buildRisks(pipeline PipelineMetrics, execution ExecutionMetrics, dataConfidence float64) []string {
	var risks []string

	if wr := pipeline.WinRate; wr != nil && *wr > 0 && *wr < 20 {
		risks = append(risks, fmt.Sprintf("Win rate below 20%% (%.1f%%)", *wr))
	}
	if execution.OnHoldOrders > 0 {
		risks = append(risks, fmt.Sprintf("%d work orders on hold", execution.OnHoldOrders))
	}
	if dataConfidence < 70 {
		risks = append(risks, "Data quality below 70% - metrics may be incomplete")
	}

	if len(risks) == 0 {
		return []string{"No significant risks identified"}
	}
	return risks
}

func buildOpportunities(pipeline PipelineMetrics) []string {
	var opportunities []string

	if topSector, stats, ok := strongestSector(pipeline.SectorBreakdown); ok {
		opportunities = append(opportunities, fmt.Sprintf("Strongest sector: %s (%s)", topSector, money(stats.Value)))
	}

	lateStage := pipeline.ValueByStage["Negotiation"] + pipeline.ValueByStage["Proposal"]
	if lateStage > 0 {
		opportunities = append(opportunities, money(lateStage)+" in late-stage negotiations")
	}

	if len(opportunities) == 0 {
		return []string{"Continue current growth trajectory"}
	}
	return opportunities
}

// strongestSector picks the sector with the highest total value, breaking
// ties by name for deterministic output.
func strongestSector(breakdown map[string]SectorStats) (string, SectorStats, bool) {
	var bestName string
	var best SectorStats
	found := false

	for name, stats := range breakdown {
		if !found || stats.Value > best.Value || (stats.Value == best.Value && name < bestName) {
			bestName, best, found = name, stats, true
		}
	}
	return bestName, best, found
}
