package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/otychat/server/internal/models"
)

const feedKey = "feed:recent"

// Feed keeps the most recent activity in a capped list, newest first.
type Feed struct {
	c    *Client
	size int64
}

// Feed returns a recent-activity list capped at size entries.
func (c *Client) Feed(size int) *Feed {
	if size <= 0 {
		size = 50
	}
	return &Feed{c: c, size: int64(size)}
}

// Push records an item and trims the list
func (f *Feed) Push(ctx context.Context, item models.FeedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal feed item: %w", err)
	}

	pipe := f.c.TxPipeline()
	pipe.LPush(ctx, feedKey, data)
	pipe.LTrim(ctx, feedKey, 0, f.size-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push feed item: %w", err)
	}
	return nil
}

// Recent returns up to n items, newest first
func (f *Feed) Recent(ctx context.Context, n int) ([]models.FeedItem, error) {
	if n <= 0 || int64(n) > f.size {
		n = int(f.size)
	}
	raw, err := f.c.LRange(ctx, feedKey, 0, int64(n)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	out := make([]models.FeedItem, 0, len(raw))
	for _, s := range raw {
		var item models.FeedItem
		if err := json.Unmarshal([]byte(s), &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
