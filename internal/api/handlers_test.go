package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-insights/internal/common/config"
	"board-insights/internal/common/logger"
	"board-insights/internal/common/observability"
)

// graphQLStub serves board and item payloads for any query the service
// sends, keyed on whether the query asks for items_page.
func graphQLStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(req.Query, "items_page") {
			w.Write([]byte(`{"data": {"boards": [{"id": "d1", "name": "Deals", "items_page": {"items": [
				{"id": "1", "name": "Won deal", "column_values": [
					{"column": {"title": "Amount"}, "text": "200000"},
					{"column": {"title": "Stage"}, "text": "Closed Won"},
					{"column": {"title": "Sector"}, "text": "Energy"}
				]},
				{"id": "2", "name": "Lost deal", "column_values": [
					{"column": {"title": "Amount"}, "text": "100000"},
					{"column": {"title": "Stage"}, "text": "Closed Lost"},
					{"column": {"title": "Sector"}, "text": "Energy"}
				]}
			]}}]}}`))
			return
		}
		w.Write([]byte(`{"data": {"boards": [
			{"id": "d1", "name": "Deals", "description": "Sales deals", "state": "active"},
			{"id": "w1", "name": "Work Orders", "state": "active"}
		]}}`))
	}))
}

func newTestServer(t *testing.T, apiURL, token string) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"*"}},
		Monday: config.MondayConfig{
			APIURL:             apiURL,
			APIToken:           token,
			APIVersion:         "2024-01",
			Timeout:            5000,
			MaxRetries:         0,
			ItemLimit:          500,
			DealsBoardID:       "d1",
			WorkOrderBoardID:   "w1",
			DealsBoardName:     "Deals",
			WorkOrderBoardName: "Work Orders",
		},
	}
	return NewServer(cfg, nil, observability.New("board-insights-test"), logger.NewNoOpLogger())
}

func TestHandleQuery(t *testing.T) {
	stub := graphQLStub(t)
	defer stub.Close()

	srv := newTestServer(t, stub.URL, "test-token")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/query", "application/json",
		strings.NewReader(`{"query": "show me the sales pipeline"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ExecutiveSummary string                 `json:"executive_summary"`
		KeyMetrics       map[string]interface{} `json:"key_metrics"`
		DataQuality      map[string]interface{} `json:"data_quality"`
		Implications     []string               `json:"implications"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Contains(t, body.ExecutiveSummary, "2 deals worth $300,000")
	assert.Equal(t, 2.0, body.KeyMetrics["total_deals"])
	assert.Equal(t, 50.0, body.KeyMetrics["win_rate"])
	assert.Equal(t, 100.0, body.DataQuality["confidence_score"])
	assert.NotEmpty(t, body.Implications)
}

func TestHandleQueryValidation(t *testing.T) {
	srv := newTestServer(t, "http://unused", "test-token")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	tests := []struct {
		name string
		body string
	}{
		{"missing query field", `{"api_token": "x"}`},
		{"empty query", `{"query": ""}`},
		{"wrong type", `{"query": 42}`},
		{"not json", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/query", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleQueryWithoutToken(t *testing.T) {
	srv := newTestServer(t, "http://unused", "")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/query", "application/json",
		strings.NewReader(`{"query": "show me the pipeline"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleListBoards(t *testing.T) {
	stub := graphQLStub(t)
	defer stub.Close()

	srv := newTestServer(t, stub.URL, "test-token")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/boards")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var boards []boardInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&boards))
	require.Len(t, boards, 2)
	assert.Equal(t, "Deals", boards[0].Name)
	assert.Equal(t, "active", boards[1].State)
}

func TestHandleConfig(t *testing.T) {
	srv := newTestServer(t, "http://unused", "test-token")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/config")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Deals", body["deals_board_name"])
	assert.Equal(t, "Work Orders", body["work_orders_board_name"])
	assert.Equal(t, true, body["api_configured"])
	// Token itself never leaves the service.
	_, exposed := body["api_token"]
	assert.False(t, exposed)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, "http://unused", "test-token")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.True(t, body.MondayConnected)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, "http://unused", "test-token")
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "caller-supplied", resp2.Header.Get("X-Request-ID"))
}
