package models

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/dbretry"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"go.uber.org/zap"
)

// ContentModel handles database operations for publishable content:
// tips, articles, culture items, challenges, level-ups and videos.
type ContentModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewContent creates a new content model.
func NewContent(db *bun.DB, logger *zap.Logger) *ContentModel {
	return &ContentModel{
		db:     db,
		logger: logger.Named("db_content"),
	}
}

// GetTips retrieves tips with their linked content and translations,
// keyed by id.
func (r *ContentModel) GetTips(ctx context.Context, ids []uint64) (map[uint64]*types.Tip, error) {
	if len(ids) == 0 {
		return map[uint64]*types.Tip{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.Tip, error) {
		var tips []*types.Tip

		err := r.db.NewSelect().
			Model(&tips).
			Relation("Article").
			Relation("Article.Translations").
			Relation("Culture").
			Relation("Culture.Translations").
			Relation("Translations").
			Where("tip.id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get tips: %w", err)
		}

		byID := make(map[uint64]*types.Tip, len(tips))
		for _, t := range tips {
			byID[t.ID] = t
		}

		return byID, nil
	})
}

// GetArticles retrieves articles with translations, keyed by id.
func (r *ContentModel) GetArticles(ctx context.Context, ids []uint64) (map[uint64]*types.Article, error) {
	if len(ids) == 0 {
		return map[uint64]*types.Article{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.Article, error) {
		var articles []*types.Article

		err := r.db.NewSelect().
			Model(&articles).
			Relation("Translations").
			Where("article.id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get articles: %w", err)
		}

		byID := make(map[uint64]*types.Article, len(articles))
		for _, a := range articles {
			byID[a.ID] = a
		}

		return byID, nil
	})
}

// GetCultureItems retrieves culture items with translations, keyed by id.
func (r *ContentModel) GetCultureItems(ctx context.Context, ids []uint64) (map[uint64]*types.CultureItem, error) {
	if len(ids) == 0 {
		return map[uint64]*types.CultureItem{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.CultureItem, error) {
		var items []*types.CultureItem

		err := r.db.NewSelect().
			Model(&items).
			Relation("Translations").
			Where("culture_item.id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get culture items: %w", err)
		}

		byID := make(map[uint64]*types.CultureItem, len(items))
		for _, c := range items {
			byID[c.ID] = c
		}

		return byID, nil
	})
}

// GetChallengeResults retrieves challenge results with their challenge
// and the challenge's linked content, keyed by id.
func (r *ContentModel) GetChallengeResults(
	ctx context.Context, ids []uint64,
) (map[uint64]*types.ChallengeResult, error) {
	if len(ids) == 0 {
		return map[uint64]*types.ChallengeResult{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.ChallengeResult, error) {
		var results []*types.ChallengeResult

		err := r.db.NewSelect().
			Model(&results).
			Relation("Challenge").
			Relation("Challenge.Article").
			Relation("Challenge.Article.Translations").
			Relation("Challenge.Culture").
			Relation("Challenge.Culture.Translations").
			Where("challenge_result.id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get challenge results: %w", err)
		}

		byID := make(map[uint64]*types.ChallengeResult, len(results))
		for _, res := range results {
			byID[res.ID] = res
		}

		return byID, nil
	})
}

// GetLevelUpEvents retrieves level-up events keyed by id.
func (r *ContentModel) GetLevelUpEvents(ctx context.Context, ids []uint64) (map[uint64]*types.LevelUpEvent, error) {
	if len(ids) == 0 {
		return map[uint64]*types.LevelUpEvent{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.LevelUpEvent, error) {
		var events []*types.LevelUpEvent

		err := r.db.NewSelect().
			Model(&events).
			Where("id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get level up events: %w", err)
		}

		byID := make(map[uint64]*types.LevelUpEvent, len(events))
		for _, e := range events {
			byID[e.ID] = e
		}

		return byID, nil
	})
}

// GetVideos retrieves videos keyed by id.
func (r *ContentModel) GetVideos(ctx context.Context, ids []uint64) (map[uint64]*types.Video, error) {
	if len(ids) == 0 {
		return map[uint64]*types.Video{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.Video, error) {
		var videos []*types.Video

		err := r.db.NewSelect().
			Model(&videos).
			Where("id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get videos: %w", err)
		}

		byID := make(map[uint64]*types.Video, len(videos))
		for _, v := range videos {
			byID[v.ID] = v
		}

		return byID, nil
	})
}
