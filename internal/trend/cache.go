package trend

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// Missing is the documented sentinel returned when no trend value is
// cached for a user, or the cached value is unparsable.
const Missing = -2

// KeyPrefix namespaces trend values in Redis, keyed by user id.
const KeyPrefix = "trend:user:"

// Cache reads the externally maintained per-user trend indicator. The
// feed engine never writes trend values.
type Cache struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewCache creates a new trend cache reader.
func NewCache(client rueidis.Client, logger *zap.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger.Named("trend_cache"),
	}
}

// GetTrend returns the cached trend value for a user. Absent and
// unparsable values both yield the Missing sentinel, not an error;
// only transport failures surface as errors.
func (c *Cache) GetTrend(ctx context.Context, userID uint64) (int, error) {
	key := fmt.Sprintf("%s%d", KeyPrefix, userID)

	resp := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if err := resp.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return Missing, nil
		}
		return Missing, fmt.Errorf("failed to get trend: %w", err)
	}

	value, err := resp.AsInt64()
	if err != nil {
		c.logger.Warn("Unparsable trend value", zap.Uint64("userID", userID), zap.Error(err))
		return Missing, nil
	}

	return int(value), nil
}
