package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-insights/internal/dataquality"
)

func deal(name, stage, sector string, amount float64) dataquality.Record {
	return dataquality.Record{
		"name":   name,
		"stage":  stage,
		"sector": sector,
		"amount": amount,
	}
}

func TestAnalyzePipelineWeightedValue(t *testing.T) {
	deals := []dataquality.Record{
		deal("Deal A", "Proposal", "Energy", 100_000),
	}

	metrics := AnalyzePipeline(deals, "")

	assert.Equal(t, 1, metrics.TotalDeals)
	assert.InDelta(t, 100_000, metrics.TotalPipelineValue, 1e-9)
	assert.InDelta(t, 50_000, metrics.WeightedPipelineValue, 1e-9)
	assert.InDelta(t, 100_000, metrics.AvgDealSize, 1e-9)
}

func TestAnalyzePipelineWonAndLost(t *testing.T) {
	deals := []dataquality.Record{
		deal("Won deal", "Closed Won", "Energy", 200_000),
		deal("Lost deal", "Closed Lost", "Energy", 100_000),
	}

	metrics := AnalyzePipeline(deals, "")

	assert.InDelta(t, 300_000, metrics.TotalPipelineValue, 1e-9)
	assert.InDelta(t, 200_000, metrics.WeightedPipelineValue, 1e-9)
	require.NotNil(t, metrics.WinRate)
	assert.InDelta(t, 50.0, *metrics.WinRate, 1e-9)
	require.NotNil(t, metrics.ConversionRate)
	assert.InDelta(t, 100.0, *metrics.ConversionRate, 1e-9)
}

func TestAnalyzePipelineRatesNilWithoutDecidedDeals(t *testing.T) {
	deals := []dataquality.Record{
		deal("Early deal", "Lead", "Energy", 50_000),
	}

	metrics := AnalyzePipeline(deals, "")

	assert.Nil(t, metrics.WinRate)
	assert.Nil(t, metrics.ConversionRate)
}

func TestAnalyzePipelineEmpty(t *testing.T) {
	metrics := AnalyzePipeline(nil, "")

	assert.Zero(t, metrics.TotalDeals)
	assert.Zero(t, metrics.AvgDealSize)
	assert.Nil(t, metrics.WinRate)
	assert.Nil(t, metrics.ConversionRate)
	assert.Empty(t, metrics.DealsByStage)
}

func TestAnalyzePipelineSectorFilter(t *testing.T) {
	deals := []dataquality.Record{
		deal("Energy deal", "Lead", "Energy", 100_000),
		deal("Tech deal", "Lead", "Technology", 200_000),
		{"name": "No sector", "stage": "Lead", "amount": 300_000.0},
	}

	metrics := AnalyzePipeline(deals, "energy")

	assert.Equal(t, 1, metrics.TotalDeals)
	assert.InDelta(t, 100_000, metrics.TotalPipelineValue, 1e-9)
}

func TestAnalyzePipelineUnknownStageAndSector(t *testing.T) {
	deals := []dataquality.Record{
		{"name": "Mystery deal", "amount": 10_000.0, "stage": "Discovery Phase"},
		{"name": "Bare deal"},
	}

	metrics := AnalyzePipeline(deals, "")

	assert.Equal(t, 1, metrics.DealsByStage["Discovery Phase"])
	assert.Equal(t, 1, metrics.DealsByStage["Unknown"])
	assert.Equal(t, 2, metrics.SectorBreakdown["Unknown"].Count)
	// Unlisted stages fall back to the lead weight.
	assert.InDelta(t, 1_000, metrics.WeightedPipelineValue, 1e-9)
}

func TestPipelineMetricsToMapRounds(t *testing.T) {
	rate := 33.33333
	m := PipelineMetrics{
		TotalPipelineValue: 1234.5678,
		WinRate:            &rate,
		DealsByStage:       map[string]int{},
		ValueByStage:       map[string]float64{"Lead": 10.999},
		SectorBreakdown:    map[string]SectorStats{},
	}

	out := m.ToMap()
	assert.Equal(t, 1234.57, out["total_pipeline_value"])
	assert.Equal(t, 33.33, out["win_rate"])
	assert.Equal(t, 11.0, out["value_by_stage"].(map[string]float64)["Lead"])
	assert.Nil(t, out["conversion_rate"])
}
