package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"board-insights/internal/common/config"
	stderrors "board-insights/internal/common/errors"
	"board-insights/internal/common/logger"
)

const getBoardsQuery = `
query {
    boards {
        id
        name
        description
        state
        columns {
            id
            title
            type
        }
    }
}`

const getBoardItemsQuery = `
query GetBoardItems($boardId: ID!, $limit: Int!) {
    boards(ids: [$boardId]) {
        id
        name
        items_page(limit: $limit) {
            items {
                id
                name
                created_at
                updated_at
                state
                column_values {
                    id
                    column {
                        id
                        title
                        type
                    }
                    text
                    value
                }
            }
        }
    }
}`

// Client talks to the Monday.com GraphQL API. An optional ItemCache keeps raw
// board item payloads for a short TTL; everything downstream is recomputed
// per query.
type Client struct {
	apiURL     string
	apiToken   string
	apiVersion string
	maxRetries int
	itemLimit  int
	httpClient *http.Client
	cache      *ItemCache
	logger     logger.Logger
}

// NewClient creates a client using cfg. A non-empty token overrides the
// configured one (caller-supplied credential pass-through).
func NewClient(cfg config.MondayConfig, token string, cache *ItemCache, log logger.Logger) *Client {
	if token == "" {
		token = cfg.APIToken
	}
	return &Client{
		apiURL:     cfg.APIURL,
		apiToken:   token,
		apiVersion: cfg.APIVersion,
		maxRetries: cfg.MaxRetries,
		itemLimit:  cfg.ItemLimit,
		httpClient: &http.Client{
			Timeout: config.GetDuration(cfg.Timeout),
		},
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"component": "monday-client"}),
	}
}

// HasToken reports whether a credential is available. Callers must check this
// before any data loading starts.
func (c *Client) HasToken() bool {
	return c.apiToken != ""
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

func (c *Client) execute(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	if c.apiToken == "" {
		return nil, stderrors.NewMissingAPITokenError()
	}

	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	var body []byte
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, stderrors.NewMondayAPITimeoutError()
			}
		}

		body, lastErr = c.doRequest(ctx, payload)
		if ctx.Err() != nil {
			return nil, stderrors.NewMondayAPITimeoutError()
		}
		if lastErr == nil {
			break
		}
	}

	if lastErr != nil {
		return nil, stderrors.NewMondayAPIFailedError(lastErr)
	}

	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, stderrors.NewMondayAPIFailedError(fmt.Errorf("decode response: %w", err))
	}

	if len(resp.Errors) > 0 {
		return nil, stderrors.NewMondayAPIFailedError(fmt.Errorf("API error: %s", resp.Errors[0].Message))
	}

	return resp.Data, nil
}

func (c *Client) doRequest(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiToken)
	req.Header.Set("API-Version", c.apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// GetBoards returns all boards accessible to the token.
func (c *Client) GetBoards(ctx context.Context) ([]Board, error) {
	data, err := c.execute(ctx, getBoardsQuery, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Boards []Board `json:"boards"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, stderrors.NewMondayAPIFailedError(fmt.Errorf("decode boards: %w", err))
	}

	return result.Boards, nil
}

// GetBoardByName returns the board whose name matches case-insensitively,
// or nil when no board matches.
func (c *Client) GetBoardByName(ctx context.Context, name string) (*Board, error) {
	boards, err := c.GetBoards(ctx)
	if err != nil {
		return nil, err
	}

	for i := range boards {
		if strings.EqualFold(boards[i].Name, name) {
			return &boards[i], nil
		}
	}
	return nil, nil
}

// GetBoardItems returns all items from a board with their column values,
// consulting the cache first when one is configured.
func (c *Client) GetBoardItems(ctx context.Context, boardID string) ([]Item, error) {
	if c.cache != nil {
		if items, ok := c.cache.Get(ctx, boardID); ok {
			c.logger.Debug("board items served from cache", map[string]interface{}{
				"boardId": boardID,
				"count":   len(items),
			})
			return items, nil
		}
	}

	variables := map[string]interface{}{
		"boardId": boardID,
		"limit":   c.itemLimit,
	}

	data, err := c.execute(ctx, getBoardItemsQuery, variables)
	if err != nil {
		return nil, err
	}

	var result struct {
		Boards []struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			ItemsPage struct {
				Items []Item `json:"items"`
			} `json:"items_page"`
		} `json:"boards"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, stderrors.NewMondayAPIFailedError(fmt.Errorf("decode items: %w", err))
	}

	if len(result.Boards) == 0 {
		return []Item{}, nil
	}

	items := result.Boards[0].ItemsPage.Items
	if c.cache != nil {
		c.cache.Put(ctx, boardID, items)
	}

	c.logger.Info("board items fetched", map[string]interface{}{
		"boardId": boardID,
		"count":   len(items),
	})

	return items, nil
}
