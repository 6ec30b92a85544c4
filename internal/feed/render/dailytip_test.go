package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

func TestRenderDailyTipOrder(t *testing.T) {
	t.Parallel()

	publish := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	r := &Renderer{}
	rc := &Context{Language: "en"}

	tests := []struct {
		name string
		tip  *types.Tip
		want int
	}{
		{
			name: "unlinked tip reports the -1 sentinel",
			tip:  &types.Tip{Title: "tip", PublishDate: publish},
			want: -1,
		},
		{
			name: "linked article at order zero is a real zero",
			tip:  &types.Tip{Title: "tip", PublishDate: publish, Article: &types.Article{Order: 0}},
			want: 0,
		},
		{
			name: "linked article order carries through",
			tip:  &types.Tip{Title: "tip", PublishDate: publish, Article: &types.Article{Order: 4}},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := &types.FeedEntry{ID: 1, Type: enum.FeedTypeDailyTip, Ref: tt.tip}
			out := &Entry{}

			require.NoError(t, renderDailyTip(t.Context(), r, rc, entry, out))
			assert.Equal(t, tt.want, out.Order)
			require.NotNil(t, out.PublishDate)
			assert.Equal(t, publish, *out.PublishDate)
		})
	}
}
