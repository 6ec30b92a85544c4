package types

import (
	"time"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

// Content is the payload side of a feed entry's tagged union. Exactly one
// concrete payload is attached per entry, chosen by the entry's type;
// RankingUpdated and EvaluationReminder entries carry none.
type Content interface {
	RefType() enum.RefType
}

// FeedEntry is one aggregated timeline event. The row stores only the
// type tag and a single reference id; hydration resolves the reference
// into the typed payload in Ref. This replaces the historical shape of
// one nullable foreign key per content kind.
type FeedEntry struct {
	bun.BaseModel `bun:"table:feed_entries"`

	ID        uint64        `bun:",pk,autoincrement" json:"id"`
	Type      enum.FeedType `bun:",notnull"          json:"type"`
	RefID     uint64        `bun:",notnull"          json:"refId"`   // 0 for reference-free types
	UserID    *uint64       `bun:"user_id"           json:"userId"`  // nil for group broadcasts
	GroupID   *uint64       `bun:"group_id"          json:"groupId"` // nil means visible to all groups
	IsPinned  bool          `bun:",notnull"          json:"isPinned"`
	CreatedAt time.Time     `bun:",notnull"          json:"createdAt"`

	// Hydrated by the feed model, never persisted.
	Ref          Content  `bun:"-" json:"-"`
	Actor        *User    `bun:"-" json:"-"`
	PinnedTagIDs []uint64 `bun:"-" json:"-"`
}

// PinnedTag is a curated board under which pinned entries are grouped.
type PinnedTag struct {
	bun.BaseModel `bun:"table:pinned_tags"`

	ID   uint64 `bun:",pk,autoincrement" json:"id"`
	Name string `bun:",notnull"          json:"name"`
}

// FeedPinnedTag links a pinned entry to the tags it is discoverable under.
type FeedPinnedTag struct {
	bun.BaseModel `bun:"table:feed_pinned_tags"`

	EntryID uint64 `bun:",pk,notnull" json:"entryId"`
	TagID   uint64 `bun:",pk,notnull" json:"tagId"`
}

// RefDescriptor is the structural reference clients use to open the
// underlying model from a feed entry.
type RefDescriptor struct {
	Type  enum.RefType `json:"type"`
	RefID *uint64      `json:"ref_id"`
}

// Engagement bundles the like/comment figures a renderer attaches to an
// entry, scoped to the requesting user and group.
type Engagement struct {
	LikeCount    int  `json:"like_count"`
	CommentCount int  `json:"comment_count"`
	Liked        bool `json:"liked"`
	Commented    bool `json:"commented"`
}

// Tip returns the attached tip payload, or nil.
func (e *FeedEntry) Tip() *Tip {
	t, _ := e.Ref.(*Tip)
	return t
}

// Media returns the attached media payload, or nil.
func (e *FeedEntry) Media() *Media {
	m, _ := e.Ref.(*Media)
	return m
}

// ChallengeResult returns the attached challenge result payload, or nil.
func (e *FeedEntry) ChallengeResult() *ChallengeResult {
	r, _ := e.Ref.(*ChallengeResult)
	return r
}

// LinkedArticle resolves the article an entry ultimately refers to,
// following tip and challenge links. Nil when the entry sits on the
// culture side of the dichotomy or has no content at all.
func (e *FeedEntry) LinkedArticle() *Article {
	switch ref := e.Ref.(type) {
	case *Article:
		return ref
	case *Tip:
		return ref.Article
	case *ChallengeResult:
		if ref.Challenge != nil {
			return ref.Challenge.Article
		}
	}
	return nil
}

// LinkedCulture resolves the culture item an entry ultimately refers to,
// following tip and challenge links.
func (e *FeedEntry) LinkedCulture() *CultureItem {
	switch ref := e.Ref.(type) {
	case *CultureItem:
		return ref
	case *Tip:
		return ref.Culture
	case *ChallengeResult:
		if ref.Challenge != nil {
			return ref.Challenge.Culture
		}
	}
	return nil
}

// ContentPublishDate returns the publish date of the linked article or
// culture item, preferring the article side. Nil when neither is linked.
func (e *FeedEntry) ContentPublishDate() *time.Time {
	if a := e.LinkedArticle(); a != nil {
		d := a.PublishDate
		return &d
	}
	if c := e.LinkedCulture(); c != nil {
		d := c.PublishDate
		return &d
	}
	return nil
}

// ContentTags returns the tag list of the linked article or culture item.
func (e *FeedEntry) ContentTags() []string {
	if a := e.LinkedArticle(); a != nil {
		return a.Tags
	}
	if c := e.LinkedCulture(); c != nil {
		return c.Tags
	}
	return nil
}

// RefDescriptor maps the entry onto the fixed type/reference contract.
// The mapping is total over defined feed types; reference-free ranking
// entries yield nil.
func (e *FeedEntry) RefDescriptor() *RefDescriptor {
	switch e.Type {
	case enum.FeedTypeChallengeCompleted, enum.FeedTypeDailyTip, enum.FeedTypeNewContent:
		if a := e.LinkedArticle(); a != nil {
			id := a.ID
			return &RefDescriptor{Type: enum.RefTypeArticle, RefID: &id}
		}
		if c := e.LinkedCulture(); c != nil {
			id := c.ID
			return &RefDescriptor{Type: enum.RefTypeCulture, RefID: &id}
		}
		return nil
	case enum.FeedTypePeerLevelUp:
		if e.UserID != nil {
			id := *e.UserID
			return &RefDescriptor{Type: enum.RefTypeUser, RefID: &id}
		}
		return nil
	case enum.FeedTypePeerQuizCompleted:
		if a := e.LinkedArticle(); a != nil {
			id := a.ID
			return &RefDescriptor{Type: enum.RefTypeArticle, RefID: &id}
		}
		return nil
	case enum.FeedTypeRankingUpdated:
		return nil
	case enum.FeedTypeNewVideo:
		id := e.RefID
		return &RefDescriptor{Type: enum.RefTypeVideo, RefID: &id}
	case enum.FeedTypeNewMedia:
		id := e.RefID
		return &RefDescriptor{Type: enum.RefTypeMedia, RefID: &id}
	case enum.FeedTypeEvaluationReminder:
		// Legacy wire sentinel, see enum.RefTypeEvaluationReminder.
		return &RefDescriptor{Type: enum.RefTypeEvaluationReminder, RefID: nil}
	default:
		return &RefDescriptor{Type: enum.RefTypeUnknown, RefID: nil}
	}
}
