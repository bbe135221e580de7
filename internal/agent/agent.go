package agent

import (
	"context"
	"strings"
	"time"

	"board-insights/internal/common/config"
	"board-insights/internal/common/logger"
	"board-insights/internal/common/metrics"
	"board-insights/internal/dataquality"
	"board-insights/internal/monday"
	"board-insights/internal/query"
)

// ItemSource provides raw board data. *monday.Client satisfies it; tests use
// a stub.
type ItemSource interface {
	GetBoards(ctx context.Context) ([]monday.Board, error)
	GetBoardByName(ctx context.Context, name string) (*monday.Board, error)
	GetBoardItems(ctx context.Context, boardID string) ([]monday.Item, error)
}

// DealsFieldMapping binds canonical deal fields to their board columns.
var DealsFieldMapping = dataquality.FieldMapping{
	{Field: "amount", Column: "Amount"},
	{Field: "stage", Column: "Stage"},
	{Field: "sector", Column: "Sector"},
	{Field: "close_date", Column: "Close Date"},
	{Field: "probability", Column: "Probability"},
	{Field: "owner", Column: "Owner"},
	{Field: "company", Column: "Company"},
}

// WorkOrdersFieldMapping binds canonical work order fields to their board
// columns.
var WorkOrdersFieldMapping = dataquality.FieldMapping{
	{Field: "revenue", Column: "Revenue"},
	{Field: "status", Column: "Status"},
	{Field: "sector", Column: "Sector"},
	{Field: "start_date", Column: "Start Date"},
	{Field: "end_date", Column: "End Date"},
	{Field: "project_manager", Column: "Project Manager"},
	{Field: "client", Column: "Client"},
}

var requiredFields = []string{"name"}

var dealsBoardHints = []string{"deal", "pipeline", "sales"}
var workOrdersBoardHints = []string{"work", "order", "project", "execution"}

// Agent answers business questions against board data. Board IDs are
// memoized after the first resolution, so an agent held across requests
// resolves each board at most once.
type Agent struct {
	source ItemSource
	cfg    config.MondayConfig
	logger logger.Logger

	dealsBoardID      string
	workOrdersBoardID string
}

func New(source ItemSource, cfg config.MondayConfig, log logger.Logger) *Agent {
	return &Agent{
		source: source,
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "bi-agent"}),
	}
}

// AnswerQuery classifies the question, loads only the record families that
// intent needs, validates them, and dispatches to the matching response
// builder. Ambiguous questions short-circuit to a clarification before any
// data is loaded.
func (a *Agent) AnswerQuery(ctx context.Context, question string) (*Response, error) {
	start := time.Now()
	parsed := query.Classify(question)

	metrics.QueriesProcessed.WithLabelValues(string(parsed.QueryType)).Inc()
	defer func() {
		metrics.QueryDuration.WithLabelValues(string(parsed.QueryType)).Observe(time.Since(start).Seconds())
	}()

	a.logger.Info("query classified", map[string]interface{}{
		"queryType":  string(parsed.QueryType),
		"timeRange":  string(parsed.TimeRange),
		"sector":     parsed.Sector,
		"confidence": parsed.Confidence,
	})

	if parsed.ClarificationNeeded != "" {
		metrics.QueriesClarified.Inc()
		return &Response{
			ExecutiveSummary: parsed.ClarificationNeeded,
			KeyMetrics:       map[string]interface{}{},
			DataQuality:      map[string]interface{}{"clarification_needed": true},
			Implications:     []string{"Please provide more details to get accurate insights"},
		}, nil
	}

	if start, end, ok := query.DateRange(parsed.TimeRange, time.Now()); ok {
		a.logger.Debug("time range resolved", map[string]interface{}{
			"start": start.Format(time.RFC3339),
			"end":   end.Format(time.RFC3339),
		})
	}

	var deals, workOrders []dataquality.Record
	var err error

	switch parsed.QueryType {
	case query.QueryTypePipelineOverview, query.QueryTypeRevenueForecast, query.QueryTypeLeadershipUpdate:
		deals, err = a.loadDeals(ctx)
		if err != nil {
			return nil, err
		}
	}

	switch parsed.QueryType {
	case query.QueryTypeExecutionStatus, query.QueryTypeRevenueForecast, query.QueryTypeLeadershipUpdate:
		workOrders, err = a.loadWorkOrders(ctx)
		if err != nil {
			return nil, err
		}
	}

	deals, dealsQuality := validateFamily(deals, "deals", "No deals data available")
	workOrders, woQuality := validateFamily(workOrders, "work_orders", "No work orders data available")
	combined := dataquality.MergeReports(dealsQuality, woQuality)

	switch parsed.QueryType {
	case query.QueryTypePipelineOverview:
		return buildPipelineResponse(parsed, deals, combined), nil
	case query.QueryTypeRevenueForecast:
		return buildRevenueResponse(parsed, deals, workOrders, combined), nil
	case query.QueryTypeExecutionStatus:
		return buildExecutionResponse(parsed, workOrders, combined), nil
	case query.QueryTypeLeadershipUpdate:
		return buildLeadershipResponse(parsed, deals, workOrders, combined), nil
	default:
		return buildCustomResponse(parsed, deals, workOrders, combined), nil
	}
}

func validateFamily(records []dataquality.Record, family, emptyWarning string) ([]dataquality.Record, dataquality.QualityReport) {
	if len(records) == 0 {
		return nil, dataquality.NewEmptyReport(emptyWarning)
	}

	accepted, report := dataquality.Validate(records, requiredFields)
	if report.ExcludedRecords > 0 {
		metrics.RecordsExcluded.WithLabelValues(family).Add(float64(report.ExcludedRecords))
	}
	return accepted, report
}

func (a *Agent) loadDeals(ctx context.Context) ([]dataquality.Record, error) {
	if a.dealsBoardID == "" {
		a.dealsBoardID = a.resolveBoard(ctx, a.cfg.DealsBoardID, a.cfg.DealsBoardName, dealsBoardHints)
	}
	if a.dealsBoardID == "" {
		a.logger.Warn("deals board not found", nil)
		return nil, nil
	}

	items, err := a.source.GetBoardItems(ctx, a.dealsBoardID)
	if err != nil {
		return nil, err
	}
	metrics.BoardItemsFetched.WithLabelValues("deals").Add(float64(len(items)))

	return dataquality.TransformItems(items, DealsFieldMapping), nil
}

func (a *Agent) loadWorkOrders(ctx context.Context) ([]dataquality.Record, error) {
	if a.workOrdersBoardID == "" {
		a.workOrdersBoardID = a.resolveBoard(ctx, a.cfg.WorkOrderBoardID, a.cfg.WorkOrderBoardName, workOrdersBoardHints)
	}
	if a.workOrdersBoardID == "" {
		a.logger.Warn("work orders board not found", nil)
		return nil, nil
	}

	items, err := a.source.GetBoardItems(ctx, a.workOrdersBoardID)
	if err != nil {
		return nil, err
	}
	metrics.BoardItemsFetched.WithLabelValues("work_orders").Add(float64(len(items)))

	return dataquality.TransformItems(items, WorkOrdersFieldMapping), nil
}

// resolveBoard tries, in order: the configured ID, a case-insensitive name
// lookup, then auto-detection by name keywords. Lookup failures degrade to
// the next strategy; an empty result means no board could be found.
func (a *Agent) resolveBoard(ctx context.Context, configuredID, configuredName string, hints []string) string {
	if configuredID != "" {
		return configuredID
	}

	if configuredName != "" {
		board, err := a.source.GetBoardByName(ctx, configuredName)
		if err == nil && board != nil {
			return board.ID
		}
	}

	boards, err := a.source.GetBoards(ctx)
	if err != nil {
		return ""
	}
	for _, board := range boards {
		name := strings.ToLower(board.Name)
		for _, hint := range hints {
			if strings.Contains(name, hint) {
				return board.ID
			}
		}
	}
	return ""
}
