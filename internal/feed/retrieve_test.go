package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

func TestRetrievable(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC)
	env := &Env{
		Viewer: Viewer{UserID: 10, GroupID: 1},
		Now:    now,
	}
	yesterday := now.Add(-48 * time.Hour)

	tests := []struct {
		name  string
		entry *types.FeedEntry
		want  bool
	}{
		{
			name: "inactive media is not found by id",
			entry: &types.FeedEntry{
				ID: 1, Type: enum.FeedTypeNewMedia,
				Ref: &types.Media{Type: enum.MediaTypeText, Active: false},
			},
			want: false,
		},
		{
			name: "media without resources is not found by id",
			entry: &types.FeedEntry{
				ID: 2, Type: enum.FeedTypeNewMedia,
				Ref: &types.Media{Type: enum.MediaTypeImage, Active: true},
			},
			want: false,
		},
		{
			name: "complete media is retrievable",
			entry: &types.FeedEntry{
				ID: 3, Type: enum.FeedTypeNewMedia,
				Ref: &types.Media{
					Type: enum.MediaTypeImage, Active: true,
					Resources: []*types.MediaResource{{ID: 1, URL: "a.jpg"}},
				},
			},
			want: true,
		},
		{
			name: "expired tip is not found by id",
			entry: &types.FeedEntry{
				ID: 4, Type: enum.FeedTypeDailyTip,
				Ref: &types.Tip{PublishDate: yesterday, ExpiryDate: &yesterday},
			},
			want: false,
		},
		{
			name: "live tip is retrievable",
			entry: &types.FeedEntry{
				ID: 5, Type: enum.FeedTypeDailyTip,
				Ref: &types.Tip{PublishDate: yesterday},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, retrievable(env, tt.entry))
		})
	}
}
