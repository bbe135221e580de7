package analyzer

import "board-insights/internal/dataquality"

// AnalyzeExecution computes delivery metrics over canonical work order
// records, optionally restricted to one sector. Completed orders make up the
// delivered revenue; planned and in-progress orders form the backlog.
func AnalyzeExecution(workOrders []dataquality.Record, sectorFilter string) ExecutionMetrics {
	workOrders = filterBySector(workOrders, sectorFilter)

	metrics := ExecutionMetrics{
		TotalWorkOrders: len(workOrders),
		OrdersByStatus:  map[string]int{},
		OrdersBySector:  map[string]int{},
	}

	for _, order := range workOrders {
		revenue, _ := order.Number("revenue")
		status, _ := order.Text("status")

		switch status {
		case "Planning":
			metrics.OrdersByStatus["Planning"]++
			metrics.BacklogValue += revenue
		case "In Progress":
			metrics.InProgressOrders++
			metrics.OrdersByStatus["In Progress"]++
			metrics.BacklogValue += revenue
		case "Completed":
			metrics.CompletedOrders++
			metrics.OrdersByStatus["Completed"]++
			metrics.DeliveredRevenue += revenue
		case "On Hold":
			metrics.OnHoldOrders++
			metrics.OrdersByStatus["On Hold"]++
		}

		sector, ok := order.Text("sector")
		if !ok {
			sector = "Unknown"
		}
		metrics.OrdersBySector[sector]++
	}

	if metrics.TotalWorkOrders > 0 {
		metrics.CompletionRate = float64(metrics.CompletedOrders) / float64(metrics.TotalWorkOrders) * 100
	}

	return metrics
}
