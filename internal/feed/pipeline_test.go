package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/internal/feed"
)

// fixedNow keeps every scenario on the same clock: 02:00 UTC, which is
// already the next calendar day for a +8 viewer.
var fixedNow = time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC)

func newEnv(offset int) *feed.Env {
	return &feed.Env{
		Viewer: feed.Viewer{
			UserID:         10,
			GroupID:        1,
			TimezoneOffset: offset,
		},
		Now:         fixedNow,
		Excluded:    map[enum.FeedType]struct{}{},
		CanEvaluate: true,
		ReminderGap: 7 * 24 * time.Hour,
	}
}

func uptr(v uint64) *uint64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func visibleIDs(entries []*types.FeedEntry) []uint64 {
	ids := make([]uint64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func TestVisibleSetGroupScope(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	candidates := []*types.FeedEntry{
		{ID: 1, Type: enum.FeedTypeRankingUpdated, GroupID: nil},
		{ID: 2, Type: enum.FeedTypeRankingUpdated, GroupID: uptr(1)},
		{ID: 3, Type: enum.FeedTypeRankingUpdated, GroupID: uptr(2)},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{2, 1}, visibleIDs(visible))
}

func TestVisibleSetForeignChallenges(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	challenge := &types.Challenge{ID: 5, PublishDate: fixedNow}
	candidates := []*types.FeedEntry{
		{
			ID: 1, Type: enum.FeedTypeChallengeCompleted, UserID: uptr(10),
			Ref: &types.ChallengeResult{Challenge: challenge},
		},
		{
			ID: 2, Type: enum.FeedTypeChallengeCompleted, UserID: uptr(11),
			Ref: &types.ChallengeResult{Challenge: challenge},
		},
		{ID: 3, Type: enum.FeedTypeChallengeCompleted, UserID: nil},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{1}, visibleIDs(visible))
}

func TestVisibleSetGroupLists(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	allowed := &types.Tip{PublishDate: fixedNow}
	blacklisted := &types.Tip{
		GroupVisibility: types.GroupVisibility{BlacklistGroupIDs: []int64{1}},
		PublishDate:     fixedNow,
	}
	restrictedArticle := &types.Tip{
		PublishDate: fixedNow,
		Article: &types.Article{
			GroupVisibility: types.GroupVisibility{AllowedGroupIDs: []int64{2}},
			PublishDate:     fixedNow,
		},
	}

	candidates := []*types.FeedEntry{
		{ID: 1, Type: enum.FeedTypeDailyTip, Ref: allowed},
		{ID: 2, Type: enum.FeedTypeDailyTip, Ref: blacklisted},
		{ID: 3, Type: enum.FeedTypeDailyTip, Ref: restrictedArticle},
		// A tip whose record is gone is not the pipeline's problem.
		{ID: 4, Type: enum.FeedTypeDailyTip},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{4, 1}, visibleIDs(visible))
}

func TestVisibleSetPublishWindowTimezone(t *testing.T) {
	t.Parallel()

	// Published 20:00 UTC on Aug 31. For a UTC viewer that date has
	// arrived; for a +8 viewer it maps to Sep 1, also arrived; but a
	// publish instant of 20:00 UTC on Sep 1 maps to Sep 2 for the +8
	// viewer and stays hidden while the UTC viewer at Sep 1 sees it.
	publishedLate := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	entry := func(id uint64, publish time.Time) *types.FeedEntry {
		return &types.FeedEntry{
			ID: id, Type: enum.FeedTypeNewContent,
			Ref: &types.Article{PublishDate: publish},
		}
	}

	tests := []struct {
		name   string
		offset int
		now    time.Time
		want   []uint64
	}{
		{
			name:   "utc viewer sees same-day publish",
			offset: 0,
			now:    time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC),
			want:   []uint64{1},
		},
		{
			name:   "plus eight viewer is already on the next day",
			offset: 8,
			now:    time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC),
			want:   []uint64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newEnv(tt.offset)
			env.Now = tt.now

			visible := feed.VisibleSet(env, []*types.FeedEntry{entry(1, publishedLate)})
			assert.Equal(t, tt.want, visibleIDs(visible))
		})
	}
}

func TestVisibleSetTipLinkedContentPublishWindow(t *testing.T) {
	t.Parallel()

	// A tip is gated by its own date and transitively by whichever
	// content it links, culture items included.
	env := newEnv(0)
	published := fixedNow.Add(-72 * time.Hour)
	future := fixedNow.Add(72 * time.Hour)

	candidates := []*types.FeedEntry{
		{
			ID: 1, Type: enum.FeedTypeDailyTip,
			Ref: &types.Tip{PublishDate: published, Culture: &types.CultureItem{PublishDate: published}},
		},
		{
			ID: 2, Type: enum.FeedTypeDailyTip,
			Ref: &types.Tip{PublishDate: published, Culture: &types.CultureItem{PublishDate: future}},
		},
		{
			ID: 3, Type: enum.FeedTypeDailyTip,
			Ref: &types.Tip{PublishDate: published, Article: &types.Article{PublishDate: future}},
		},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{1}, visibleIDs(visible))
}

func TestVisibleSetIncompleteMedia(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	candidates := []*types.FeedEntry{
		{
			ID: 1, Type: enum.FeedTypeNewMedia,
			Ref: &types.Media{Type: enum.MediaTypeImage, Active: true},
		},
		{
			ID: 2, Type: enum.FeedTypeNewMedia,
			Ref: &types.Media{
				Type: enum.MediaTypeImage, Active: true,
				Resources: []*types.MediaResource{{ID: 1, URL: "a.jpg"}},
			},
		},
		{
			ID: 3, Type: enum.FeedTypeNewMedia,
			Ref: &types.Media{Type: enum.MediaTypeText, Active: true},
		},
		{
			ID: 4, Type: enum.FeedTypeNewMedia,
			Ref: &types.Media{Type: enum.MediaTypeText, Active: false},
		},
		// Missing media record: survives filtering, degrades at render.
		{ID: 5, Type: enum.FeedTypeNewMedia},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{5, 3, 2}, visibleIDs(visible))
}

func TestVisibleSetExpiry(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	yesterday := fixedNow.Add(-48 * time.Hour)
	published := fixedNow.Add(-72 * time.Hour)

	candidates := []*types.FeedEntry{
		{
			ID: 1, Type: enum.FeedTypeDailyTip,
			Ref: &types.Tip{PublishDate: published, ExpiryDate: tptr(yesterday)},
		},
		{
			ID: 2, Type: enum.FeedTypeDailyTip,
			Ref: &types.Tip{PublishDate: published, ExpiryDate: tptr(fixedNow)},
		},
		{
			ID: 3, Type: enum.FeedTypeNewContent,
			Ref: &types.Article{PublishDate: published, ExpiryDate: tptr(yesterday)},
		},
		{
			ID: 4, Type: enum.FeedTypeChallengeCompleted, UserID: uptr(10),
			Ref: &types.ChallengeResult{Challenge: &types.Challenge{PublishDate: yesterday}},
		},
		{
			ID: 5, Type: enum.FeedTypeChallengeCompleted, UserID: uptr(10),
			Ref: &types.ChallengeResult{Challenge: &types.Challenge{PublishDate: fixedNow}},
		},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{5, 2}, visibleIDs(visible))
}

func TestVisibleSetTypeExclusion(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	env.Excluded = feed.SurfaceCurrent.ExcludedTypes()

	candidates := []*types.FeedEntry{
		{ID: 1, Type: enum.FeedTypeRankingUpdated},
		{ID: 2, Type: enum.FeedTypeNewVideo, RefID: 1},
		{ID: 3, Type: enum.FeedTypeNewContent, Ref: &types.Article{PublishDate: fixedNow.Add(-time.Hour)}},
		{ID: 4, Type: enum.FeedTypePeerLevelUp, UserID: uptr(11)},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{3}, visibleIDs(visible))
}

func TestVisibleSetReminderGate(t *testing.T) {
	t.Parallel()

	gap := 7 * 24 * time.Hour
	entries := []*types.FeedEntry{
		{ID: 1, Type: enum.FeedTypeEvaluationReminder, CreatedAt: fixedNow},
		{ID: 2, Type: enum.FeedTypeEvaluationReminder, CreatedAt: fixedNow.Add(-gap)},
		{ID: 3, Type: enum.FeedTypeEvaluationReminder, CreatedAt: fixedNow.Add(-gap - 24*time.Hour)},
	}

	env := newEnv(0)
	visible := feed.VisibleSet(env, entries)
	assert.Equal(t, []uint64{2, 1}, visibleIDs(visible), "boundary reminder stays visible")

	env.CanEvaluate = false
	visible = feed.VisibleSet(env, entries)
	assert.Empty(t, visible, "reminders are invisible without the evaluation permission")
}

func TestVisibleSetPinnedExclusion(t *testing.T) {
	t.Parallel()

	candidates := []*types.FeedEntry{
		{ID: 1, Type: enum.FeedTypeNewContent, IsPinned: true, Ref: &types.Article{PublishDate: fixedNow.Add(-time.Hour)}},
		{ID: 2, Type: enum.FeedTypeNewContent, Ref: &types.Article{PublishDate: fixedNow.Add(-time.Hour)}},
	}

	env := newEnv(0)
	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{2}, visibleIDs(visible))

	env.Category = enum.CategoryUnread
	visible = feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{2, 1}, visibleIDs(visible), "unread category keeps pinned entries")
}

func TestVisibleSetDeduplicatesAndOrders(t *testing.T) {
	t.Parallel()

	env := newEnv(0)
	candidates := []*types.FeedEntry{
		{ID: 3, Type: enum.FeedTypeRankingUpdated},
		{ID: 7, Type: enum.FeedTypeRankingUpdated},
		{ID: 3, Type: enum.FeedTypeRankingUpdated},
		{ID: 5, Type: enum.FeedTypeRankingUpdated},
	}

	visible := feed.VisibleSet(env, candidates)
	assert.Equal(t, []uint64{7, 5, 3}, visibleIDs(visible))
}

func TestVisibleSetStagesCommute(t *testing.T) {
	t.Parallel()

	// Every stage is a pure per-entry predicate, so survivors must not
	// depend on candidate order either.
	env := newEnv(0)
	candidates := []*types.FeedEntry{
		{ID: 1, Type: enum.FeedTypeRankingUpdated, GroupID: uptr(2)},
		{ID: 2, Type: enum.FeedTypeNewContent, Ref: &types.Article{PublishDate: fixedNow.Add(-time.Hour)}},
		{ID: 3, Type: enum.FeedTypeEvaluationReminder, CreatedAt: fixedNow},
		{ID: 4, Type: enum.FeedTypeNewMedia, Ref: &types.Media{Type: enum.MediaTypeImage, Active: true}},
	}
	reversed := []*types.FeedEntry{candidates[3], candidates[2], candidates[1], candidates[0]}

	assert.Equal(t,
		visibleIDs(feed.VisibleSet(env, candidates)),
		visibleIDs(feed.VisibleSet(env, reversed)),
	)
}
