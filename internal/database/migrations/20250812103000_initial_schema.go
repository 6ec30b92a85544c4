package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/types"
)

func init() { //nolint:funlen
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Company)(nil),
			(*types.UserGroup)(nil),
			(*types.User)(nil),
			(*types.UserPermission)(nil),
			(*types.Article)(nil),
			(*types.ArticleTranslation)(nil),
			(*types.CultureItem)(nil),
			(*types.CultureTranslation)(nil),
			(*types.Tip)(nil),
			(*types.TipTranslation)(nil),
			(*types.Challenge)(nil),
			(*types.ChallengeResult)(nil),
			(*types.LevelUpEvent)(nil),
			(*types.Video)(nil),
			(*types.Media)(nil),
			(*types.MediaResource)(nil),
			(*types.FeedEntry)(nil),
			(*types.PinnedTag)(nil),
			(*types.FeedPinnedTag)(nil),
			(*types.ReadMark)(nil),
			(*types.FeedLikeLog)(nil),
			(*types.FeedComment)(nil),
			(*types.ArticleLikeLog)(nil),
			(*types.ArticleComment)(nil),
			(*types.CultureLikeLog)(nil),
			(*types.CultureComment)(nil),
			(*types.MediaLikeLog)(nil),
			(*types.MediaComment)(nil),
			(*types.QuizResult)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		// Down migration - drop all tables in reverse dependency order
		models := []any{
			(*types.QuizResult)(nil),
			(*types.MediaComment)(nil),
			(*types.MediaLikeLog)(nil),
			(*types.CultureComment)(nil),
			(*types.CultureLikeLog)(nil),
			(*types.ArticleComment)(nil),
			(*types.ArticleLikeLog)(nil),
			(*types.FeedComment)(nil),
			(*types.FeedLikeLog)(nil),
			(*types.ReadMark)(nil),
			(*types.FeedPinnedTag)(nil),
			(*types.PinnedTag)(nil),
			(*types.FeedEntry)(nil),
			(*types.MediaResource)(nil),
			(*types.Media)(nil),
			(*types.Video)(nil),
			(*types.LevelUpEvent)(nil),
			(*types.ChallengeResult)(nil),
			(*types.Challenge)(nil),
			(*types.TipTranslation)(nil),
			(*types.Tip)(nil),
			(*types.CultureTranslation)(nil),
			(*types.CultureItem)(nil),
			(*types.ArticleTranslation)(nil),
			(*types.Article)(nil),
			(*types.UserPermission)(nil),
			(*types.User)(nil),
			(*types.UserGroup)(nil),
			(*types.Company)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %T: %w", model, err)
			}
		}

		return nil
	})
}
