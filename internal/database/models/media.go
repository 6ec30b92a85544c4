package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/dbretry"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"go.uber.org/zap"
)

// ErrMediaNotFound is returned when a referenced media record no longer
// exists. Renderers recover from it with an empty payload.
var ErrMediaNotFound = errors.New("media not found")

// MediaModel handles database operations for media posts.
type MediaModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewMedia creates a new media model.
func NewMedia(db *bun.DB, logger *zap.Logger) *MediaModel {
	return &MediaModel{
		db:     db,
		logger: logger.Named("db_media"),
	}
}

// Get retrieves one media post with its resources.
func (r *MediaModel) Get(ctx context.Context, id uint64) (*types.Media, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Media, error) {
		media := new(types.Media)

		err := r.db.NewSelect().
			Model(media).
			Relation("Resources").
			Where("media.id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrMediaNotFound
			}
			return nil, fmt.Errorf("failed to get media: %w", err)
		}

		return media, nil
	})
}

// GetByIDs retrieves media posts with resources, keyed by id. Missing
// rows are simply absent from the result.
func (r *MediaModel) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*types.Media, error) {
	if len(ids) == 0 {
		return map[uint64]*types.Media{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.Media, error) {
		var posts []*types.Media

		err := r.db.NewSelect().
			Model(&posts).
			Relation("Resources").
			Where("media.id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get media posts: %w", err)
		}

		byID := make(map[uint64]*types.Media, len(posts))
		for _, m := range posts {
			byID[m.ID] = m
		}

		return byID, nil
	})
}
