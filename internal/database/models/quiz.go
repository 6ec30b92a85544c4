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

// QuizModel handles database operations for quiz results.
type QuizModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewQuiz creates a new quiz model.
func NewQuiz(db *bun.DB, logger *zap.Logger) *QuizModel {
	return &QuizModel{
		db:     db,
		logger: logger.Named("db_quiz"),
	}
}

// LatestResult returns the user's most recent quiz result for an
// article, or nil when the user has never taken the quiz.
func (r *QuizModel) LatestResult(ctx context.Context, userID, articleID uint64) (*types.QuizResult, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.QuizResult, error) {
		result := new(types.QuizResult)

		err := r.db.NewSelect().
			Model(result).
			Where("user_id = ?", userID).
			Where("article_id = ?", articleID).
			Order("created_at DESC").
			Limit(1).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get latest quiz result: %w", err)
		}

		return result, nil
	})
}
