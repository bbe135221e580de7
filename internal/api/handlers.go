package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"board-insights/internal/agent"
	"board-insights/internal/common/config"
	stderrors "board-insights/internal/common/errors"
	"board-insights/internal/common/logger"
	"board-insights/internal/common/observability"
	"board-insights/internal/monday"
	"board-insights/internal/query"
)

const apiVersion = "1.0.0"

// Server wires the HTTP surface to the agent. A new client and agent are
// built per request so callers can pass their own API token.
type Server struct {
	cfg    *config.Config
	cache  *monday.ItemCache
	obs    *observability.Observability
	logger logger.Logger
}

func NewServer(cfg *config.Config, cache *monday.ItemCache, obs *observability.Observability, log logger.Logger) *Server {
	return &Server{
		cfg:    cfg,
		cache:  cache,
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

type queryRequest struct {
	Query    string `json:"query"`
	APIToken string `json:"api_token,omitempty"`
}

type boardInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	State       string `json:"state"`
}

type healthResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	MondayConnected bool   `json:"monday_connected"`
}

func (s *Server) newAgent(token string) (*agent.Agent, error) {
	client := monday.NewClient(s.cfg.Monday, token, s.cache, s.logger)
	if !client.HasToken() {
		return nil, stderrors.NewMissingAPITokenError()
	}
	return agent.New(client, s.cfg.Monday, s.logger), nil
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var stdErr *stderrors.StandardError
	if !errors.As(err, &stdErr) {
		stdErr = stderrors.NewMondayAPIFailedError(err)
	}

	s.logger.WithError(err).Error("request failed", map[string]interface{}{
		"path": r.URL.Path,
		"code": string(stdErr.Code),
	})

	render.Status(r, stderrors.HTTPStatus(stdErr.Code))
	render.JSON(w, r, map[string]interface{}{"detail": stdErr.Message, "code": stdErr.Code})
}

func (s *Server) answer(ctx context.Context, token, question string) (*agent.Response, error) {
	a, err := s.newAgent(token)
	if err != nil {
		return nil, err
	}

	parsed := query.Classify(question)
	start := time.Now()
	resp, err := a.AnswerQuery(ctx, question)
	if err != nil {
		return nil, err
	}

	s.obs.RecordQueryProcessed(ctx, string(parsed.QueryType))
	s.obs.RecordQueryDuration(ctx, time.Since(start), string(parsed.QueryType))
	return resp, nil
}

// handleQuery answers a free-text business question.
// POST /api/query
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.renderError(w, r, stderrors.NewInvalidRequestError("failed to read request body"))
		return
	}

	if ok, reason := validateQueryRequest(body); !ok {
		s.renderError(w, r, stderrors.NewInvalidRequestError(reason))
		return
	}

	var req queryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.renderError(w, r, stderrors.NewInvalidRequestError("malformed request body"))
		return
	}

	resp, err := s.answer(r.Context(), req.APIToken, req.Query)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.JSON(w, r, resp)
}

// handleLeadershipUpdate answers the canned leadership question, so clients
// get a full digest without composing one.
// POST /api/leadership-update
func (s *Server) handleLeadershipUpdate(w http.ResponseWriter, r *http.Request) {
	resp, err := s.answer(r.Context(), r.URL.Query().Get("api_token"), "Give me a leadership update")
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.JSON(w, r, resp)
}

// handleListBoards lists all boards the token can reach.
// GET /api/boards
func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("api_token")
	client := monday.NewClient(s.cfg.Monday, token, s.cache, s.logger)
	if !client.HasToken() {
		s.renderError(w, r, stderrors.NewMissingAPITokenError())
		return
	}

	boards, err := client.GetBoards(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	out := make([]boardInfo, 0, len(boards))
	for _, b := range boards {
		state := b.State
		if state == "" {
			state = "active"
		}
		out = append(out, boardInfo{ID: b.ID, Name: b.Name, Description: b.Description, State: state})
	}

	render.JSON(w, r, out)
}

// handleConfig exposes non-sensitive configuration for frontends.
// GET /api/config
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"deals_board_name":       s.cfg.Monday.DealsBoardName,
		"work_orders_board_name": s.cfg.Monday.WorkOrderBoardName,
		"api_configured":         s.cfg.Monday.APIToken != "",
	})
}

// handleHealth reports liveness and whether a token is configured.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthResponse{
		Status:          "healthy",
		Version:         apiVersion,
		MondayConnected: s.cfg.Monday.APIToken != "",
	})
}
