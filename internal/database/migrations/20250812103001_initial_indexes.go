package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- Feed timeline indexes
			CREATE INDEX IF NOT EXISTS idx_feed_entries_group_id
			ON feed_entries (group_id, id DESC);

			CREATE INDEX IF NOT EXISTS idx_feed_entries_user
			ON feed_entries (user_id)
			WHERE user_id IS NOT NULL;

			CREATE INDEX IF NOT EXISTS idx_feed_entries_pinned
			ON feed_entries (id)
			WHERE is_pinned = true;

			CREATE INDEX IF NOT EXISTS idx_feed_pinned_tags_tag
			ON feed_pinned_tags (tag_id, entry_id);

			-- Read mark lookups by user
			CREATE INDEX IF NOT EXISTS idx_read_marks_user
			ON read_marks (user_id, entry_id);

			-- Umbrella feed interaction logs
			CREATE INDEX IF NOT EXISTS idx_feed_like_logs_entry_group
			ON feed_like_logs (entry_id, group_id);

			CREATE INDEX IF NOT EXISTS idx_feed_comments_entry_group
			ON feed_comments (entry_id, group_id);

			-- Per-content interaction logs
			CREATE INDEX IF NOT EXISTS idx_article_like_logs_content_group
			ON article_like_logs (content_id, group_id);

			CREATE INDEX IF NOT EXISTS idx_article_comments_content_group
			ON article_comments (content_id, group_id);

			CREATE INDEX IF NOT EXISTS idx_culture_like_logs_content_group
			ON culture_like_logs (content_id, group_id);

			CREATE INDEX IF NOT EXISTS idx_culture_comments_content_group
			ON culture_comments (content_id, group_id);

			CREATE INDEX IF NOT EXISTS idx_media_like_logs_content
			ON media_like_logs (content_id);

			CREATE INDEX IF NOT EXISTS idx_media_comments_content
			ON media_comments (content_id);

			-- Latest quiz result lookup
			CREATE INDEX IF NOT EXISTS idx_quiz_results_user_article
			ON quiz_results (user_id, article_id, created_at DESC);

			-- Media resources by parent
			CREATE INDEX IF NOT EXISTS idx_media_resources_media
			ON media_resources (media_id);

			-- Translations by parent content
			CREATE INDEX IF NOT EXISTS idx_tip_translations_content
			ON tip_translations (content_id);

			CREATE INDEX IF NOT EXISTS idx_article_translations_content
			ON article_translations (content_id);

			CREATE INDEX IF NOT EXISTS idx_culture_translations_content
			ON culture_translations (content_id);
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_feed_entries_group_id;
			DROP INDEX IF EXISTS idx_feed_entries_user;
			DROP INDEX IF EXISTS idx_feed_entries_pinned;
			DROP INDEX IF EXISTS idx_feed_pinned_tags_tag;
			DROP INDEX IF EXISTS idx_read_marks_user;
			DROP INDEX IF EXISTS idx_feed_like_logs_entry_group;
			DROP INDEX IF EXISTS idx_feed_comments_entry_group;
			DROP INDEX IF EXISTS idx_article_like_logs_content_group;
			DROP INDEX IF EXISTS idx_article_comments_content_group;
			DROP INDEX IF EXISTS idx_culture_like_logs_content_group;
			DROP INDEX IF EXISTS idx_culture_comments_content_group;
			DROP INDEX IF EXISTS idx_media_like_logs_content;
			DROP INDEX IF EXISTS idx_media_comments_content;
			DROP INDEX IF EXISTS idx_quiz_results_user_article;
			DROP INDEX IF EXISTS idx_media_resources_media;
			DROP INDEX IF EXISTS idx_tip_translations_content;
			DROP INDEX IF EXISTS idx_article_translations_content;
			DROP INDEX IF EXISTS idx_culture_translations_content;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}
