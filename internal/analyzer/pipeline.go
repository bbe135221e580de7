package analyzer

import (
	"strings"

	"board-insights/internal/dataquality"
)

// Probability-of-close weight per sales stage. Unknown stages get the lead
// weight rather than zero so new vocabulary is not silently valued at nothing.
var stageWeights = map[string]float64{
	"Lead":        0.1,
	"Qualified":   0.25,
	"Proposal":    0.5,
	"Negotiation": 0.75,
	"Closed Won":  1.0,
	"Closed Lost": 0.0,
}

const defaultStageWeight = 0.1

// AnalyzePipeline computes pipeline metrics over canonical deal records,
// optionally restricted to one sector. Records without a sector never match
// a sector filter.
func AnalyzePipeline(deals []dataquality.Record, sectorFilter string) PipelineMetrics {
	deals = filterBySector(deals, sectorFilter)

	metrics := PipelineMetrics{
		TotalDeals:      len(deals),
		DealsByStage:    map[string]int{},
		ValueByStage:    map[string]float64{},
		SectorBreakdown: map[string]SectorStats{},
	}

	wonCount, lostCount := 0, 0
	var wonValue float64

	for _, deal := range deals {
		amount, _ := deal.Number("amount")
		stage, hasStage := deal.Text("stage")
		if !hasStage {
			stage = "Unknown"
		}

		metrics.TotalPipelineValue += amount
		metrics.DealsByStage[stage]++
		metrics.ValueByStage[stage] += amount

		weight, known := stageWeights[stage]
		if !known {
			weight = defaultStageWeight
		}
		metrics.WeightedPipelineValue += amount * weight

		sector, hasSector := deal.Text("sector")
		if !hasSector {
			sector = "Unknown"
		}
		stats := metrics.SectorBreakdown[sector]
		stats.Count++
		stats.Value += amount
		metrics.SectorBreakdown[sector] = stats

		switch stage {
		case "Closed Won":
			wonCount++
			wonValue += amount
		case "Closed Lost":
			lostCount++
		}
	}

	if metrics.TotalDeals > 0 {
		metrics.AvgDealSize = metrics.TotalPipelineValue / float64(metrics.TotalDeals)
	}

	// Conversion: won deals against everything that made it past lead stage.
	attempted := metrics.DealsByStage["Qualified"] +
		metrics.DealsByStage["Proposal"] +
		metrics.DealsByStage["Negotiation"] +
		wonCount
	if attempted > 0 {
		rate := float64(wonCount) / float64(attempted) * 100
		metrics.ConversionRate = &rate
	}

	if decided := wonCount + lostCount; decided > 0 {
		rate := float64(wonCount) / float64(decided) * 100
		metrics.WinRate = &rate
	}

	return metrics
}

func filterBySector(records []dataquality.Record, sector string) []dataquality.Record {
	if sector == "" {
		return records
	}

	filtered := make([]dataquality.Record, 0, len(records))
	for _, rec := range records {
		if s, ok := rec.Text("sector"); ok && strings.EqualFold(s, sector) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
