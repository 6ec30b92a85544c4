package models

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/dbretry"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"go.uber.org/zap"
)

// PermissionModel handles read-only permission checks.
type PermissionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPermission creates a new permission model.
func NewPermission(db *bun.DB, logger *zap.Logger) *PermissionModel {
	return &PermissionModel{
		db:     db,
		logger: logger.Named("db_permission"),
	}
}

// HasPermission reports whether the user holds the named permission.
func (r *PermissionModel) HasPermission(ctx context.Context, userID uint64, name string) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		exists, err := r.db.NewSelect().
			Model((*types.UserPermission)(nil)).
			Where("user_id = ?", userID).
			Where("name = ?", name).
			Exists(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check permission: %w", err)
		}

		return exists, nil
	})
}
