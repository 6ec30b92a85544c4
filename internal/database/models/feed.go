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

// ErrFeedNotFound is returned when a single-entry lookup misses.
var ErrFeedNotFound = errors.New("feed entry not found")

// FeedModel handles database operations for feed entries.
type FeedModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewFeed creates a new feed model.
func NewFeed(db *bun.DB, logger *zap.Logger) *FeedModel {
	return &FeedModel{
		db:     db,
		logger: logger.Named("db_feed"),
	}
}

// GetEntriesForGroup retrieves the raw candidate rows for a group:
// entries scoped to the group plus global broadcasts, newest first.
// Visibility filtering happens in the feed engine, not here.
func (r *FeedModel) GetEntriesForGroup(ctx context.Context, groupID uint64) ([]*types.FeedEntry, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.FeedEntry, error) {
		var entries []*types.FeedEntry

		err := r.db.NewSelect().
			Model(&entries).
			Where("group_id = ? OR group_id IS NULL", groupID).
			Order("id DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get feed entries: %w", err)
		}

		return entries, nil
	})
}

// GetEntryByID retrieves a single feed entry.
func (r *FeedModel) GetEntryByID(ctx context.Context, id uint64) (*types.FeedEntry, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.FeedEntry, error) {
		entry := new(types.FeedEntry)

		err := r.db.NewSelect().
			Model(entry).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrFeedNotFound
			}
			return nil, fmt.Errorf("failed to get feed entry: %w", err)
		}

		return entry, nil
	})
}

// GetPinnedEntries retrieves entries pinned under a tag, scoped to the
// requesting group or owned by the requesting user. No expiry gating is
// applied; pinned content is assumed curated and valid while pinned.
func (r *FeedModel) GetPinnedEntries(
	ctx context.Context, tagID, groupID, userID uint64,
) ([]*types.FeedEntry, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.FeedEntry, error) {
		var entries []*types.FeedEntry

		err := r.db.NewSelect().
			Model(&entries).
			Join("JOIN feed_pinned_tags AS fpt ON fpt.entry_id = feed_entry.id").
			Where("fpt.tag_id = ?", tagID).
			Where("feed_entry.group_id = ? OR feed_entry.user_id = ?", groupID, userID).
			Order("feed_entry.id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get pinned entries: %w", err)
		}

		return entries, nil
	})
}

// GetPinnedTagIDs returns the pin tags for each of the given entries.
func (r *FeedModel) GetPinnedTagIDs(ctx context.Context, entryIDs []uint64) (map[uint64][]uint64, error) {
	if len(entryIDs) == 0 {
		return map[uint64][]uint64{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64][]uint64, error) {
		var rows []*types.FeedPinnedTag

		err := r.db.NewSelect().
			Model(&rows).
			Where("entry_id IN (?)", bun.In(entryIDs)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get pinned tags: %w", err)
		}

		tags := make(map[uint64][]uint64, len(rows))
		for _, row := range rows {
			tags[row.EntryID] = append(tags[row.EntryID], row.TagID)
		}

		return tags, nil
	})
}
