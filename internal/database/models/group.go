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

// ErrGroupNotFound is returned for unknown group ids. Callers must not
// substitute a default group or timezone.
var ErrGroupNotFound = errors.New("user group not found")

// GroupModel handles database operations for user groups.
type GroupModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewGroup creates a new group model.
func NewGroup(db *bun.DB, logger *zap.Logger) *GroupModel {
	return &GroupModel{
		db:     db,
		logger: logger.Named("db_group"),
	}
}

// Get retrieves a user group with its company.
func (r *GroupModel) Get(ctx context.Context, id uint64) (*types.UserGroup, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.UserGroup, error) {
		group := new(types.UserGroup)

		err := r.db.NewSelect().
			Model(group).
			Relation("Company").
			Where("user_group.id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to get user group: %w", err)
		}

		return group, nil
	})
}

// GetUsers retrieves the given users keyed by id.
func (r *GroupModel) GetUsers(ctx context.Context, ids []uint64) (map[uint64]*types.User, error) {
	if len(ids) == 0 {
		return map[uint64]*types.User{}, nil
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.User, error) {
		var users []*types.User

		err := r.db.NewSelect().
			Model(&users).
			Where("id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get users: %w", err)
		}

		byID := make(map[uint64]*types.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}

		return byID, nil
	})
}
