package trend_test

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilyamx/thinkittwice/internal/trend"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*trend.Cache, *miniredis.Miniredis) {
	t.Helper()

	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return trend.NewCache(client, zap.NewNop()), mr
}

func TestGetTrend(t *testing.T) {
	t.Parallel()

	cache, mr := setupTest(t)
	mr.Set(fmt.Sprintf("%s%d", trend.KeyPrefix, 42), "3")

	value, err := cache.GetTrend(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, 3, value)
}

func TestGetTrendMissing(t *testing.T) {
	t.Parallel()

	cache, _ := setupTest(t)

	value, err := cache.GetTrend(t.Context(), 99)
	require.NoError(t, err)
	assert.Equal(t, trend.Missing, value)
}

func TestGetTrendUnparsable(t *testing.T) {
	t.Parallel()

	cache, mr := setupTest(t)
	mr.Set(fmt.Sprintf("%s%d", trend.KeyPrefix, 7), "not-a-number")

	value, err := cache.GetTrend(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, trend.Missing, value)
}

func TestGetTrendNegativeValue(t *testing.T) {
	t.Parallel()

	cache, mr := setupTest(t)
	mr.Set(fmt.Sprintf("%s%d", trend.KeyPrefix, 11), "-1")

	value, err := cache.GetTrend(t.Context(), 11)
	require.NoError(t, err)
	assert.Equal(t, -1, value)
}
