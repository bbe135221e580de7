package monday

import (
	"context"
	"encoding/json"
	"time"

	"board-insights/internal/common/database"
	"board-insights/internal/common/logger"
)

const itemCacheKeyPrefix = "monday:items:"

// ItemCache holds raw board item payloads in Redis for a short TTL. Only the
// external fetch is cached; aggregates are always recomputed from scratch.
type ItemCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewItemCache(redis *database.RedisClient, ttl time.Duration, log logger.Logger) *ItemCache {
	return &ItemCache{
		redis:  redis,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "item-cache"}),
	}
}

// Get returns the cached items for a board, or false on miss or decode error.
func (c *ItemCache) Get(ctx context.Context, boardID string) ([]Item, bool) {
	raw, err := c.redis.Get(ctx, itemCacheKeyPrefix+boardID)
	if err != nil {
		return nil, false
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("discarding malformed cache entry", map[string]interface{}{
			"boardId": boardID,
			"error":   err.Error(),
		})
		_ = c.redis.Del(ctx, itemCacheKeyPrefix+boardID)
		return nil, false
	}

	return items, true
}

// Put stores the items for a board. Cache failures are logged, never surfaced:
// the fetch already succeeded.
func (c *ItemCache) Put(ctx context.Context, boardID string, items []Item) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}

	if err := c.redis.Set(ctx, itemCacheKeyPrefix+boardID, payload, c.ttl); err != nil {
		c.logger.Warn("failed to cache board items", map[string]interface{}{
			"boardId": boardID,
			"error":   err.Error(),
		})
	}
}
