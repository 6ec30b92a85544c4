package models

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/dbretry"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"go.uber.org/zap"
)

// ReadMarkModel handles database operations for read marks. The feed
// engine only consults read state; marking happens elsewhere.
type ReadMarkModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReadMark creates a new read mark model.
func NewReadMark(db *bun.DB, logger *zap.Logger) *ReadMarkModel {
	return &ReadMarkModel{
		db:     db,
		logger: logger.Named("db_readmark"),
	}
}

// IsRead reports whether the user has a read mark for the entry.
func (r *ReadMarkModel) IsRead(ctx context.Context, userID, entryID uint64) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		exists, err := r.db.NewSelect().
			Model((*types.ReadMark)(nil)).
			Where("user_id = ?", userID).
			Where("entry_id = ?", entryID).
			Exists(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check read mark: %w", err)
		}

		return exists, nil
	})
}

// ReadSet returns the set of entry ids the user has read among the given
// candidates. Pass nil entryIDs to fetch the user's full read set.
func (r *ReadMarkModel) ReadSet(
	ctx context.Context, userID uint64, entryIDs []uint64,
) (map[uint64]struct{}, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]struct{}, error) {
		var ids []uint64

		query := r.db.NewSelect().
			Model((*types.ReadMark)(nil)).
			Column("entry_id").
			Where("user_id = ?", userID)
		if len(entryIDs) > 0 {
			query = query.Where("entry_id IN (?)", bun.In(entryIDs))
		}

		err := query.Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get read set: %w", err)
		}

		read := make(map[uint64]struct{}, len(ids))
		for _, id := range ids {
			read[id] = struct{}{}
		}

		return read, nil
	})
}
