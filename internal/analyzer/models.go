package analyzer

import (
	"math"

	"board-insights/internal/dataquality"
)

// SectorStats is the per-sector slice of a metric family.
type SectorStats struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// PipelineMetrics summarizes the sales pipeline. Rates are nil when their
// denominator is zero; "no data" and "0%" are different answers.
type PipelineMetrics struct {
	TotalDeals            int
	TotalPipelineValue    float64
	WeightedPipelineValue float64
	AvgDealSize           float64
	DealsByStage          map[string]int
	ValueByStage          map[string]float64
	ConversionRate        *float64
	WinRate               *float64
	SectorBreakdown       map[string]SectorStats
}

// ToMap renders the metrics for API responses, rounding currency and rate
// values to two decimals.
func (m PipelineMetrics) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"total_deals":             m.TotalDeals,
		"total_pipeline_value":    round2(m.TotalPipelineValue),
		"weighted_pipeline_value": round2(m.WeightedPipelineValue),
		"avg_deal_size":           round2(m.AvgDealSize),
		"deals_by_stage":          m.DealsByStage,
		"value_by_stage":          roundMap(m.ValueByStage),
		"conversion_rate":         roundPtr(m.ConversionRate),
		"win_rate":                roundPtr(m.WinRate),
		"sector_breakdown":        sectorMap(m.SectorBreakdown),
	}
}

// RevenueMetrics summarizes recognized and forecasted revenue. GrowthRate is
// reserved for period-over-period comparison and stays nil until a baseline
// period is wired in.
type RevenueMetrics struct {
	TotalRevenue      float64
	RecognizedRevenue float64
	ForecastedRevenue float64
	RevenueBySector   map[string]float64
	RevenueByMonth    map[string]float64
	YTDRevenue        float64
	GrowthRate        *float64
}

func (m RevenueMetrics) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"total_revenue":      round2(m.TotalRevenue),
		"recognized_revenue": round2(m.RecognizedRevenue),
		"forecasted_revenue": round2(m.ForecastedRevenue),
		"revenue_by_sector":  roundMap(m.RevenueBySector),
		"revenue_by_month":   roundMap(m.RevenueByMonth),
		"ytd_revenue":        round2(m.YTDRevenue),
		"growth_rate":        roundPtr(m.GrowthRate),
	}
}

// ExecutionMetrics summarizes work order delivery. AvgCompletionTimeDays is
// reserved until per-order duration data is reliable enough to aggregate.
type ExecutionMetrics struct {
	TotalWorkOrders       int
	CompletedOrders       int
	InProgressOrders      int
	OnHoldOrders          int
	CompletionRate        float64
	AvgCompletionTimeDays *float64
	OrdersByStatus        map[string]int
	OrdersBySector        map[string]int
	DeliveredRevenue      float64
	BacklogValue          float64
}

func (m ExecutionMetrics) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"total_work_orders":        m.TotalWorkOrders,
		"completed_orders":         m.CompletedOrders,
		"in_progress_orders":       m.InProgressOrders,
		"on_hold_orders":           m.OnHoldOrders,
		"completion_rate":          round2(m.CompletionRate),
		"avg_completion_time_days": roundPtr(m.AvgCompletionTimeDays),
		"orders_by_status":         m.OrdersByStatus,
		"orders_by_sector":         m.OrdersBySector,
		"delivered_revenue":        round2(m.DeliveredRevenue),
		"backlog_value":            round2(m.BacklogValue),
	}
}

// LeadershipSummary is the executive digest built from all three metric
// families plus the data quality behind them.
type LeadershipSummary struct {
	Period         string
	PipelineHealth string
	KeyHighlights  []string
	Risks          []string
	Opportunities  []string
	Pipeline       PipelineMetrics
	Revenue        RevenueMetrics
	Execution      ExecutionMetrics
	DataQuality    dataquality.QualityReport
}

func (s LeadershipSummary) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"period":            s.Period,
		"pipeline_health":   s.PipelineHealth,
		"key_highlights":    s.KeyHighlights,
		"risks":             s.Risks,
		"opportunities":     s.Opportunities,
		"pipeline_metrics":  s.Pipeline.ToMap(),
		"revenue_metrics":   s.Revenue.ToMap(),
		"execution_metrics": s.Execution.ToMap(),
		"data_quality": map[string]interface{}{
			"total_records":    s.DataQuality.TotalRecords,
			"valid_records":    s.DataQuality.ValidRecords,
			"confidence_score": round1(s.DataQuality.ConfidenceScore()),
			"warnings":         truncate(s.DataQuality.Warnings, 5),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func truncate(warnings []string, n int) []string {
	if len(warnings) > n {
		return warnings[:n]
	}
	return warnings
}

func roundPtr(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return round2(*v)
}

func roundMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = round2(v)
	}
	return out
}

func sectorMap(m map[string]SectorStats) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = map[string]interface{}{
			"count": v.Count,
			"value": round2(v.Value),
		}
	}
	return out
}
