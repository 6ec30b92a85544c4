package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/internal/feed"
)

func expiringContent(id uint64) *types.FeedEntry {
	expiry := fixedNow.Add(30 * 24 * time.Hour)
	return &types.FeedEntry{
		ID: id, Type: enum.FeedTypeNewContent,
		Ref: &types.Article{PublishDate: fixedNow.Add(-time.Hour), ExpiryDate: &expiry},
	}
}

func TestAssembleLegacySurface(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	env.Category = enum.CategoryUnread

	candidates := []*types.FeedEntry{
		expiringContent(1),
		// Pinned never surfaces on the detail view, unread or not.
		{
			ID: 2, Type: enum.FeedTypeNewContent, IsPinned: true,
			Ref: &types.Article{PublishDate: fixedNow.Add(-time.Hour)},
		},
		// Text media is a list-view concept.
		{
			ID: 3, Type: enum.FeedTypeNewMedia,
			Ref: &types.Media{Type: enum.MediaTypeText, Active: true},
		},
		{
			ID: 4, Type: enum.FeedTypeNewMedia,
			Ref: &types.Media{
				Type: enum.MediaTypeImage, Active: true,
				Resources: []*types.MediaResource{{ID: 1, URL: "a.jpg"}},
			},
		},
	}

	visible, total := feed.Assemble(env, feed.SurfaceLegacy, candidates, nil, 0)
	assert.Equal(t, []uint64{4, 1}, visibleIDs(visible))
	assert.Equal(t, 2, total)
}

func TestAssembleCurrentSurfaceRequiresExpiry(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	env.Excluded = feed.SurfaceCurrent.ExcludedTypes()

	candidates := []*types.FeedEntry{
		expiringContent(1),
		{
			ID: 2, Type: enum.FeedTypeNewContent,
			Ref: &types.Article{PublishDate: fixedNow.Add(-time.Hour)},
		},
		{ID: 3, Type: enum.FeedTypeNewVideo, RefID: 9},
	}

	visible, total := feed.Assemble(env, feed.SurfaceCurrent, candidates, nil, 0)
	assert.Equal(t, []uint64{1}, visibleIDs(visible))
	assert.Equal(t, 1, total)
}

func TestAssembleCursorIsStrictSuffix(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	candidates := []*types.FeedEntry{
		expiringContent(1),
		expiringContent(3),
		expiringContent(5),
		expiringContent(7),
	}

	all, total := feed.Assemble(env, feed.SurfaceCurrent, candidates, nil, 0)
	assert.Equal(t, []uint64{7, 5, 3, 1}, visibleIDs(all))
	assert.Equal(t, 4, total)

	// The watermark excludes itself; total still counts the full set.
	page, total := feed.Assemble(env, feed.SurfaceCurrent, candidates, nil, 5)
	assert.Equal(t, []uint64{3, 1}, visibleIDs(page))
	assert.Equal(t, 4, total)

	// A cursor below the oldest id yields an empty page, never an error.
	page, total = feed.Assemble(env, feed.SurfaceCurrent, candidates, nil, 1)
	assert.Empty(t, page)
	assert.Equal(t, 4, total)
}

func TestSurfaceExcludedTypes(t *testing.T) {
	t.Parallel()

	legacy := feed.SurfaceLegacy.ExcludedTypes()
	assert.Len(t, legacy, 1)
	assert.Contains(t, legacy, enum.FeedTypePeerQuizCompleted)

	current := feed.SurfaceCurrent.ExcludedTypes()
	assert.Len(t, current, 5)
	for _, ft := range []enum.FeedType{
		enum.FeedTypePeerLevelUp,
		enum.FeedTypePeerQuizCompleted,
		enum.FeedTypeRankingUpdated,
		enum.FeedTypeNewVideo,
		enum.FeedTypeEvaluationReminder,
	} {
		assert.Contains(t, current, ft)
	}
	assert.NotContains(t, current, enum.FeedTypeChallengeCompleted,
		"the viewer's own completed challenges belong to the list view")
}

func TestAssembleCurrentSurfaceChallengeAndReminder(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	env.Excluded = feed.SurfaceCurrent.ExcludedTypes()

	candidates := []*types.FeedEntry{
		{
			ID: 1, Type: enum.FeedTypeChallengeCompleted, UserID: uptr(10),
			Ref: &types.ChallengeResult{Challenge: &types.Challenge{PublishDate: fixedNow}},
		},
		{
			ID: 2, Type: enum.FeedTypeChallengeCompleted, UserID: uptr(99),
			Ref: &types.ChallengeResult{Challenge: &types.Challenge{PublishDate: fixedNow}},
		},
		// In-gap reminders belong to the detail view only.
		{ID: 3, Type: enum.FeedTypeEvaluationReminder, CreatedAt: fixedNow},
	}

	visible, total := feed.Assemble(env, feed.SurfaceCurrent, candidates, nil, 0)
	assert.Equal(t, []uint64{1}, visibleIDs(visible))
	assert.Equal(t, 1, total)
}
