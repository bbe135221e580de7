package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-insights/internal/dataquality"
	"board-insights/internal/query"
)

func ptr(v float64) *float64 { return &v }

func TestAssessPipelineHealth(t *testing.T) {
	tests := []struct {
		name     string
		pipeline PipelineMetrics
		expected string
	}{
		{"no deals", PipelineMetrics{}, "No Data"},
		{
			"strong",
			PipelineMetrics{TotalDeals: 10, TotalPipelineValue: 2_000_000, AvgDealSize: 200_000, WinRate: ptr(50)},
			"Strong",
		},
		{
			"healthy",
			PipelineMetrics{TotalDeals: 5, TotalPipelineValue: 600_000, AvgDealSize: 120_000},
			"Healthy",
		},
		{
			"needs attention",
			PipelineMetrics{TotalDeals: 3, TotalPipelineValue: 100_000, AvgDealSize: 33_000},
			"Needs Attention",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assessPipelineHealth(tt.pipeline))
		})
	}
}

func TestGenerateLeadershipSummary(t *testing.T) {
	pipeline := PipelineMetrics{
		TotalDeals:         4,
		TotalPipelineValue: 1_500_000,
		AvgDealSize:        375_000,
		WinRate:            ptr(40),
		ValueByStage:       map[string]float64{"Negotiation": 300_000, "Proposal": 200_000},
		SectorBreakdown: map[string]SectorStats{
			"Energy":     {Count: 3, Value: 1_200_000},
			"Technology": {Count: 1, Value: 300_000},
		},
	}
	revenue := RevenueMetrics{RecognizedRevenue: 800_000}
	execution := ExecutionMetrics{TotalWorkOrders: 5, CompletedOrders: 4, CompletionRate: 80}
	quality := dataquality.QualityReport{TotalRecords: 20, ValidRecords: 19}

	summary := GenerateLeadershipSummary(pipeline, revenue, execution, quality, query.TimeRangeThisQuarter)

	assert.Equal(t, "This Quarter", summary.Period)
	assert.Equal(t, "Strong", summary.PipelineHealth)

	require.Len(t, summary.KeyHighlights, 4)
	assert.Equal(t, "Pipeline value: $1,500,000 (4 deals)", summary.KeyHighlights[0])
	assert.Equal(t, "Win rate: 40.0%", summary.KeyHighlights[1])
	assert.Equal(t, "Recognized revenue: $800,000", summary.KeyHighlights[2])
	assert.Equal(t, "Project completion rate: 80.0%", summary.KeyHighlights[3])

	assert.Equal(t, []string{"No significant risks identified"}, summary.Risks)

	require.Len(t, summary.Opportunities, 2)
	assert.Equal(t, "Strongest sector: Energy ($1,200,000)", summary.Opportunities[0])
	assert.Equal(t, "$500,000 in late-stage negotiations", summary.Opportunities[1])
}

func TestGenerateLeadershipSummaryRisks(t *testing.T) {
	pipeline := PipelineMetrics{TotalDeals: 2, WinRate: ptr(10)}
	execution := ExecutionMetrics{OnHoldOrders: 3}
	quality := dataquality.QualityReport{TotalRecords: 2, ValidRecords: 1}

	summary := GenerateLeadershipSummary(pipeline, RevenueMetrics{}, execution, quality, query.TimeRangeAllTime)

	assert.Equal(t, "All Time", summary.Period)
	require.Len(t, summary.Risks, 3)
	assert.Equal(t, "Win rate below 20% (10.0%)", summary.Risks[0])
	assert.Equal(t, "3 work orders on hold", summary.Risks[1])
	assert.Equal(t, "Data quality below 70% - metrics may be incomplete", summary.Risks[2])
}

func TestGenerateLeadershipSummaryDefaults(t *testing.T) {
	quality := dataquality.QualityReport{TotalRecords: 1, ValidRecords: 1}
	summary := GenerateLeadershipSummary(PipelineMetrics{}, RevenueMetrics{}, ExecutionMetrics{}, quality, query.TimeRangeCustom)

	assert.Equal(t, "Custom Period", summary.Period)
	assert.Equal(t, "No Data", summary.PipelineHealth)
	assert.Empty(t, summary.KeyHighlights)
	assert.Equal(t, []string{"No significant risks identified"}, summary.Risks)
	assert.Equal(t, []string{"Continue current growth trajectory"}, summary.Opportunities)
}
