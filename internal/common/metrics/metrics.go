// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bi_queries_processed_total",
			Help: "Total number of business queries processed by query type",
		},
		[]string{"query_type"},
	)

	QueriesClarified = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bi_queries_clarified_total",
			Help: "Total number of queries answered with a clarification prompt",
		},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "bi_query_duration_seconds",
			Help: "Duration of query processing in seconds",
		},
		[]string{"query_type"},
	)

	BoardItemsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bi_board_items_fetched_total",
			Help: "Total number of raw items fetched per record family",
		},
		[]string{"family"},
	)

	RecordsExcluded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bi_records_excluded_total",
			Help: "Total number of records excluded during validation",
		},
		[]string{"family"},
	)
)
