package models

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/dbretry"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"go.uber.org/zap"
)

// InteractionModel handles the two interaction log families: the
// umbrella per-entry feed log used by the legacy surface and the
// per-content-type logs used by the current surface.
type InteractionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewInteraction creates a new interaction model.
func NewInteraction(db *bun.DB, logger *zap.Logger) *InteractionModel {
	return &InteractionModel{
		db:     db,
		logger: logger.Named("db_interaction"),
	}
}

// FeedEngagement counts likes and comments on a feed entry. Counts are
// scoped to the viewer's group; liked/commented to the viewer.
func (r *InteractionModel) FeedEngagement(
	ctx context.Context, entryID, userID, groupID uint64,
) (types.Engagement, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (types.Engagement, error) {
		var eng types.Engagement

		likeCount, err := r.db.NewSelect().
			Model((*types.FeedLikeLog)(nil)).
			Where("entry_id = ?", entryID).
			Where("group_id = ?", groupID).
			Count(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to count feed likes: %w", err)
		}

		commentCount, err := r.db.NewSelect().
			Model((*types.FeedComment)(nil)).
			Where("entry_id = ?", entryID).
			Where("group_id = ?", groupID).
			Count(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to count feed comments: %w", err)
		}

		liked, err := r.db.NewSelect().
			Model((*types.FeedLikeLog)(nil)).
			Where("entry_id = ?", entryID).
			Where("user_id = ?", userID).
			Exists(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to check feed like: %w", err)
		}

		commented, err := r.db.NewSelect().
			Model((*types.FeedComment)(nil)).
			Where("entry_id = ?", entryID).
			Where("user_id = ?", userID).
			Exists(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to check feed comment: %w", err)
		}

		eng = types.Engagement{
			LikeCount:    likeCount,
			CommentCount: commentCount,
			Liked:        liked,
			Commented:    commented,
		}

		return eng, nil
	})
}

// ArticleEngagement counts interactions against an article.
func (r *InteractionModel) ArticleEngagement(
	ctx context.Context, articleID, userID, groupID uint64,
) (types.Engagement, error) {
	return r.contentEngagement(ctx,
		(*types.ArticleLikeLog)(nil), (*types.ArticleComment)(nil),
		articleID, userID, groupID)
}

// CultureEngagement counts interactions against a culture item.
func (r *InteractionModel) CultureEngagement(
	ctx context.Context, cultureID, userID, groupID uint64,
) (types.Engagement, error) {
	return r.contentEngagement(ctx,
		(*types.CultureLikeLog)(nil), (*types.CultureComment)(nil),
		cultureID, userID, groupID)
}

// MediaEngagement counts interactions against a media post. Media counts
// are community-wide, not group-scoped.
func (r *InteractionModel) MediaEngagement(
	ctx context.Context, mediaID, userID uint64,
) (types.Engagement, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (types.Engagement, error) {
		var eng types.Engagement

		likeCount, err := r.db.NewSelect().
			Model((*types.MediaLikeLog)(nil)).
			Where("content_id = ?", mediaID).
			Count(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to count media likes: %w", err)
		}

		commentCount, err := r.db.NewSelect().
			Model((*types.MediaComment)(nil)).
			Where("content_id = ?", mediaID).
			Count(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to count media comments: %w", err)
		}

		liked, err := r.db.NewSelect().
			Model((*types.MediaLikeLog)(nil)).
			Where("content_id = ?", mediaID).
			Where("user_id = ?", userID).
			Exists(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to check media like: %w", err)
		}

		commented, err := r.db.NewSelect().
			Model((*types.MediaComment)(nil)).
			Where("content_id = ?", mediaID).
			Where("user_id = ?", userID).
			Exists(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to check media comment: %w", err)
		}

		eng = types.Engagement{
			LikeCount:    likeCount,
			CommentCount: commentCount,
			Liked:        liked,
			Commented:    commented,
		}

		return eng, nil
	})
}

// contentEngagement runs the shared count/exists queries for one of the
// per-content log pairs.
func (r *InteractionModel) contentEngagement(
	ctx context.Context, likeModel, commentModel any, contentID, userID, groupID uint64,
) (types.Engagement, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (types.Engagement, error) {
		var eng types.Engagement

		likeCount, err := r.db.NewSelect().
			Model(likeModel).
			Where("content_id = ?", contentID).
			Where("group_id = ?", groupID).
			Count(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to count content likes: %w", err)
		}

		commentCount, err := r.db.NewSelect().
			Model(commentModel).
			Where("content_id = ?", contentID).
			Where("group_id = ?", groupID).
			Count(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to count content comments: %w", err)
		}

		liked, err := r.db.NewSelect().
			Model(likeModel).
			Where("content_id = ?", contentID).
			Where("user_id = ?", userID).
			Exists(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to check content like: %w", err)
		}

		commented, err := r.db.NewSelect().
			Model(commentModel).
			Where("content_id = ?", contentID).
			Where("user_id = ?", userID).
			Exists(ctx)
		if err != nil {
			return eng, fmt.Errorf("failed to check content comment: %w", err)
		}

		eng = types.Engagement{
			LikeCount:    likeCount,
			CommentCount: commentCount,
			Liked:        liked,
			Commented:    commented,
		}

		return eng, nil
	})
}
