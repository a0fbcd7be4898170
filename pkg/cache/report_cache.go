package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// ReportCacheTTL is the time-to-live for the latest cached report.
	ReportCacheTTL = time.Hour

	reportCacheKeyPrefix = "report:efficiency"
)

// ReportCache stores the latest generated efficiency report per user so a
// failed regeneration can fall back to the previous document.
// Key format: "report:efficiency:{userID}"
type ReportCache struct {
	client *RedisClient
}

// NewReportCache creates a ReportCache backed by the given RedisClient.
func NewReportCache(r *RedisClient) *ReportCache {
	return &ReportCache{client: r}
}

// Get retrieves the latest cached report for the user.
// Returns redis.Nil error when no report is cached or it has expired.
func (c *ReportCache) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	report, err := c.client.Client().Get(ctx, c.key(userID)).Result()
	if err != nil {
		return "", fmt.Errorf("report cache get: %w", err)
	}
	return report, nil
}

// Set stores the report with a one-hour TTL, replacing any previous entry.
func (c *ReportCache) Set(ctx context.Context, userID uuid.UUID, report string) error {
	if err := c.client.Client().Set(ctx, c.key(userID), report, ReportCacheTTL).Err(); err != nil {
		return fmt.Errorf("report cache set: %w", err)
	}
	return nil
}

func (c *ReportCache) key(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", reportCacheKeyPrefix, userID)
}
