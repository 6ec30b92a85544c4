package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/internal/feed"
)

func taggedContent(id uint64, tags ...string) *types.FeedEntry {
	return &types.FeedEntry{
		ID: id, Type: enum.FeedTypeNewContent,
		Ref: &types.Article{PublishDate: fixedNow, Tags: tags},
	}
}

func TestClassifyUnread(t *testing.T) {
	t.Parallel()

	entries := []*types.FeedEntry{
		{ID: 1, Type: enum.FeedTypeNewContent},
		{ID: 2, Type: enum.FeedTypeNewMedia},
		{ID: 3, Type: enum.FeedTypeDailyTip},
		{ID: 4, Type: enum.FeedTypeRankingUpdated},
		{ID: 5, Type: enum.FeedTypeNewContent},
	}
	readSet := map[uint64]struct{}{5: {}}

	kept := feed.Classify(enum.CategoryUnread, entries, readSet)
	assert.Equal(t, []uint64{1, 2, 3}, visibleIDs(kept))
}

func TestClassifyTagMatchIsExact(t *testing.T) {
	t.Parallel()

	entries := []*types.FeedEntry{
		taggedContent(1, "brand"),
		taggedContent(2, "branded"),
		taggedContent(3, "Brand"),
		taggedContent(4, "market"),
		{ID: 5, Type: enum.FeedTypeNewMedia},
	}

	kept := feed.Classify(enum.CategoryBrand, entries, nil)
	assert.Equal(t, []uint64{1, 3}, visibleIDs(kept), "matching is case-insensitive but never a prefix match")

	kept = feed.Classify(enum.CategoryMarket, entries, nil)
	assert.Equal(t, []uint64{4}, visibleIDs(kept))
}

func TestClassifyCommunity(t *testing.T) {
	t.Parallel()

	entries := []*types.FeedEntry{
		taggedContent(1, "brand"),
		{ID: 2, Type: enum.FeedTypeNewMedia},
		{ID: 3, Type: enum.FeedTypeDailyTip},
	}

	kept := feed.Classify(enum.CategoryCommunity, entries, nil)
	assert.Equal(t, []uint64{2}, visibleIDs(kept))
}

func TestClassifyUnknownCategoryIsNoOp(t *testing.T) {
	t.Parallel()

	entries := []*types.FeedEntry{
		taggedContent(1, "brand"),
		{ID: 2, Type: enum.FeedTypeNewMedia},
	}

	kept := feed.Classify(enum.Category("nonsense"), entries, nil)
	assert.Equal(t, entries, kept)

	kept = feed.Classify(enum.CategoryNone, entries, nil)
	assert.Equal(t, entries, kept)
}

func TestRequireExpiry(t *testing.T) {
	t.Parallel()

	expiry := fixedNow.Add(24 * time.Hour)
	entries := []*types.FeedEntry{
		{
			ID: 1, Type: enum.FeedTypeNewContent,
			Ref: &types.Article{PublishDate: fixedNow, ExpiryDate: &expiry},
		},
		{
			ID: 2, Type: enum.FeedTypeNewContent,
			Ref: &types.Article{PublishDate: fixedNow},
		},
		{
			ID: 3, Type: enum.FeedTypeNewContent,
			Ref: &types.CultureItem{PublishDate: fixedNow, ExpiryDate: &expiry},
		},
		// No linked content record at all.
		{ID: 4, Type: enum.FeedTypeNewContent},
		// Other kinds are untouched even without expiry.
		{ID: 5, Type: enum.FeedTypeNewMedia},
	}

	kept := feed.RequireExpiry(entries)
	assert.Equal(t, []uint64{1, 3, 5}, visibleIDs(kept))
}
