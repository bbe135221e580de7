package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"board-insights/internal/dataquality"
)

func TestAnalyzeExecution(t *testing.T) {
	orders := []dataquality.Record{
		workOrder("Done A", "Completed", "Energy", 100_000, nil),
		workOrder("Done B", "Completed", "Technology", 50_000, nil),
		workOrder("Running", "In Progress", "Energy", 30_000, nil),
		workOrder("Queued", "Planning", "Energy", 20_000, nil),
		workOrder("Stuck", "On Hold", "Technology", 15_000, nil),
	}

	metrics := AnalyzeExecution(orders, "")

	assert.Equal(t, 5, metrics.TotalWorkOrders)
	assert.Equal(t, 2, metrics.CompletedOrders)
	assert.Equal(t, 1, metrics.InProgressOrders)
	assert.Equal(t, 1, metrics.OrdersByStatus["Planning"])
	assert.Equal(t, 1, metrics.OnHoldOrders)
	assert.InDelta(t, 40.0, metrics.CompletionRate, 1e-9)
	assert.InDelta(t, 150_000, metrics.DeliveredRevenue, 1e-9)
	// Backlog is in-progress plus planned; on-hold value sits outside it.
	assert.InDelta(t, 50_000, metrics.BacklogValue, 1e-9)
	assert.Equal(t, 3, metrics.OrdersBySector["Energy"])
	assert.Equal(t, 2, metrics.OrdersBySector["Technology"])
	assert.Nil(t, metrics.AvgCompletionTimeDays)
}

func TestAnalyzeExecutionEmpty(t *testing.T) {
	metrics := AnalyzeExecution(nil, "")

	assert.Zero(t, metrics.TotalWorkOrders)
	assert.Zero(t, metrics.CompletionRate)
	assert.Empty(t, metrics.OrdersBySector)
	assert.Empty(t, metrics.OrdersByStatus)
}

func TestAnalyzeExecutionSectorFilter(t *testing.T) {
	orders := []dataquality.Record{
		workOrder("Energy order", "Completed", "Energy", 100_000, nil),
		workOrder("Tech order", "In Progress", "Technology", 60_000, nil),
	}

	metrics := AnalyzeExecution(orders, "energy")

	assert.Equal(t, 1, metrics.TotalWorkOrders)
	assert.InDelta(t, 100.0, metrics.CompletionRate, 1e-9)
}
