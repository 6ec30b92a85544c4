package types

import (
	"time"

	"github.com/uptrace/bun"
)

// ReadMark records that a user has seen a feed entry. Consulted by the
// unread category and by pinned-board ranking; written elsewhere.
type ReadMark struct {
	bun.BaseModel `bun:"table:read_marks"`

	UserID    uint64    `bun:",pk,notnull" json:"userId"`
	EntryID   uint64    `bun:",pk,notnull" json:"entryId"`
	CreatedAt time.Time `bun:",notnull"    json:"createdAt"`
}

// FeedLikeLog is the umbrella interaction log: one row per like on a
// feed entry, with the liker's group denormalized for group-scoped
// counting.
type FeedLikeLog struct {
	bun.BaseModel `bun:"table:feed_like_logs"`

	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	EntryID   uint64    `bun:",notnull"          json:"entryId"`
	UserID    uint64    `bun:",notnull"          json:"userId"`
	GroupID   uint64    `bun:"group_id,notnull"  json:"groupId"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}

// FeedComment is the umbrella comment log on feed entries.
type FeedComment struct {
	bun.BaseModel `bun:"table:feed_comments"`

	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	EntryID   uint64    `bun:",notnull"          json:"entryId"`
	UserID    uint64    `bun:",notnull"          json:"userId"`
	GroupID   uint64    `bun:"group_id,notnull"  json:"groupId"`
	Body      string    `bun:",notnull"          json:"body"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}

// ContentInteraction is the shared shape of the per-content-type
// interaction logs used by the current surface.
type ContentInteraction struct {
	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	ContentID uint64    `bun:",notnull"          json:"contentId"`
	UserID    uint64    `bun:",notnull"          json:"userId"`
	GroupID   uint64    `bun:"group_id,notnull"  json:"groupId"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}

// ArticleLikeLog records a like against an article.
type ArticleLikeLog struct {
	bun.BaseModel `bun:"table:article_like_logs"`
	ContentInteraction
}

// ArticleComment records a comment against an article.
type ArticleComment struct {
	bun.BaseModel `bun:"table:article_comments"`
	ContentInteraction

	Body string `bun:",notnull" json:"body"`
}

// CultureLikeLog records a like against a culture item.
type CultureLikeLog struct {
	bun.BaseModel `bun:"table:culture_like_logs"`
	ContentInteraction
}

// CultureComment records a comment against a culture item.
type CultureComment struct {
	bun.BaseModel `bun:"table:culture_comments"`
	ContentInteraction

	Body string `bun:",notnull" json:"body"`
}

// MediaLikeLog records a like against a media post.
type MediaLikeLog struct {
	bun.BaseModel `bun:"table:media_like_logs"`
	ContentInteraction
}

// MediaComment records a comment against a media post.
type MediaComment struct {
	bun.BaseModel `bun:"table:media_comments"`
	ContentInteraction

	Body string `bun:",notnull" json:"body"`
}

// QuizResult records a quiz attempt against an article.
type QuizResult struct {
	bun.BaseModel `bun:"table:quiz_results"`

	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	UserID    uint64    `bun:",notnull"          json:"userId"`
	ArticleID uint64    `bun:",notnull"          json:"articleId"`
	Points    int       `bun:",notnull"          json:"points"`
	Score     float64   `bun:",notnull"          json:"score"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}

// QuizSummary is the include-flag projection of the most recent quiz
// result, with the score rounded to two decimals by the renderer.
type QuizSummary struct {
	Points int     `json:"points"`
	Result float64 `json:"result"`
}
