package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/internal/feed"
)

func pinnedEntry(id uint64, publish time.Time) *types.FeedEntry {
	return &types.FeedEntry{
		ID: id, Type: enum.FeedTypeNewContent, IsPinned: true,
		Ref: &types.Article{PublishDate: publish},
	}
}

func TestRankPinnedUnreadFirst(t *testing.T) {
	t.Parallel()

	older := fixedNow.Add(-48 * time.Hour)
	newer := fixedNow.Add(-24 * time.Hour)

	entries := []*types.FeedEntry{
		pinnedEntry(1, older),
		pinnedEntry(2, newer),
		pinnedEntry(3, older),
	}
	readSet := map[uint64]struct{}{1: {}}

	feed.RankPinned(entries, readSet)

	// Unread before read, then publish date ascending, then id ascending.
	assert.Equal(t, []uint64{3, 2, 1}, visibleIDs(entries))
}

func TestRankPinnedNilPublishDatesLast(t *testing.T) {
	t.Parallel()

	dated := pinnedEntry(5, fixedNow.Add(-24*time.Hour))
	undated := &types.FeedEntry{ID: 2, Type: enum.FeedTypeNewContent, IsPinned: true}

	entries := []*types.FeedEntry{undated, dated}
	feed.RankPinned(entries, nil)

	assert.Equal(t, []uint64{5, 2}, visibleIDs(entries))
}

func TestRankPinnedTiesBreakOnID(t *testing.T) {
	t.Parallel()

	publish := fixedNow.Add(-24 * time.Hour)
	entries := []*types.FeedEntry{
		pinnedEntry(9, publish),
		pinnedEntry(4, publish),
		pinnedEntry(7, publish),
	}

	feed.RankPinned(entries, nil)
	assert.Equal(t, []uint64{4, 7, 9}, visibleIDs(entries))
}
