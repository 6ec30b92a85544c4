package render

import (
	"context"

	"github.com/wilyamx/thinkittwice/internal/database/models"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

// CountSource supplies the like/comment figures for an entry. The two
// surfaces count against different underlying logs but share the
// renderer dispatch table, so the strategy is swappable.
type CountSource interface {
	Engagement(ctx context.Context, entry *types.FeedEntry, userID, groupID uint64) (types.Engagement, error)
}

// FeedLogCounts counts against the umbrella feed-interaction log, one
// row per like or comment on the entry itself. Used by the legacy
// detail surface.
type FeedLogCounts struct {
	interactions *models.InteractionModel
}

// NewFeedLogCounts creates the umbrella-log count source.
func NewFeedLogCounts(interactions *models.InteractionModel) *FeedLogCounts {
	return &FeedLogCounts{interactions: interactions}
}

// Engagement counts likes and comments logged directly against the
// feed entry.
func (s *FeedLogCounts) Engagement(
	ctx context.Context, entry *types.FeedEntry, userID, groupID uint64,
) (types.Engagement, error) {
	return s.interactions.FeedEngagement(ctx, entry.ID, userID, groupID)
}

// ContentLogCounts counts against the per-content-type interaction
// logs, resolved through the entry's linked content. Used by the
// current list surface. Kinds without a per-content log yield zeros.
type ContentLogCounts struct {
	interactions *models.InteractionModel
}

// NewContentLogCounts creates the per-content-log count source.
func NewContentLogCounts(interactions *models.InteractionModel) *ContentLogCounts {
	return &ContentLogCounts{interactions: interactions}
}

// Engagement counts likes and comments logged against the entry's
// underlying content record.
func (s *ContentLogCounts) Engagement(
	ctx context.Context, entry *types.FeedEntry, userID, groupID uint64,
) (types.Engagement, error) {
	switch entry.Type {
	case enum.FeedTypeNewMedia:
		if entry.RefID == 0 {
			return types.Engagement{}, nil
		}
		return s.interactions.MediaEngagement(ctx, entry.RefID, userID)
	case enum.FeedTypeNewContent, enum.FeedTypeDailyTip, enum.FeedTypeChallengeCompleted:
		if article := entry.LinkedArticle(); article != nil {
			return s.interactions.ArticleEngagement(ctx, article.ID, userID, groupID)
		}
		if culture := entry.LinkedCulture(); culture != nil {
			return s.interactions.CultureEngagement(ctx, culture.ID, userID, groupID)
		}
		return types.Engagement{}, nil
	default:
		return types.Engagement{}, nil
	}
}
