package analyzer

import (
	"time"

	"board-insights/internal/dataquality"
)

// AnalyzeRevenue computes revenue metrics over canonical work order records.
// Completed orders count as recognized revenue; planned and in-progress
// orders as forecasted. Monthly buckets only include records whose start
// date actually parsed; YTD is measured against now's calendar year.
func AnalyzeRevenue(workOrders []dataquality.Record, sectorFilter string, now time.Time) RevenueMetrics {
	workOrders = filterBySector(workOrders, sectorFilter)

	metrics := RevenueMetrics{
		RevenueBySector: map[string]float64{},
		RevenueByMonth:  map[string]float64{},
	}

	currentYear := now.Year()

	for _, order := range workOrders {
		revenue, _ := order.Number("revenue")
		status, _ := order.Text("status")

		metrics.TotalRevenue += revenue

		switch status {
		case "Completed":
			metrics.RecognizedRevenue += revenue
		case "In Progress", "Planning":
			metrics.ForecastedRevenue += revenue
		}

		sector, ok := order.Text("sector")
		if !ok {
			sector = "Unknown"
		}
		metrics.RevenueBySector[sector] += revenue

		if start, ok := order.Date("start_date"); ok {
			metrics.RevenueByMonth[start.Format("2006-01")] += revenue
			if start.Year() == currentYear {
				metrics.YTDRevenue += revenue
			}
		}
	}

	return metrics
}
