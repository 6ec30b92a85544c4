package types

import (
	"time"

	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

// Translation is one localized rendering of a content record. Tips also
// carry a localized push message; articles and culture items leave it
// empty.
type Translation struct {
	ContentID uint64 `bun:",pk,notnull" json:"contentId"`
	Language  string `bun:",pk,notnull" json:"language"`
	Title     string `bun:",notnull"    json:"title"`
	Content   string `bun:""            json:"content"`
	Message   string `bun:""            json:"message"`
}

// TipTranslation localizes a tip of the day.
type TipTranslation struct {
	bun.BaseModel `bun:"table:tip_translations"`
	Translation
}

// ArticleTranslation localizes an article.
type ArticleTranslation struct {
	bun.BaseModel `bun:"table:article_translations"`
	Translation
}

// CultureTranslation localizes a culture item.
type CultureTranslation struct {
	bun.BaseModel `bun:"table:culture_translations"`
	Translation
}

// GroupVisibility is the allow/deny scoping shared by publishable
// content. A non-empty allowed or whitelist set restricts the record to
// those groups; the blacklist always excludes.
type GroupVisibility struct {
	AllowedGroupIDs   []int64 `bun:"allowed_group_ids,array"   json:"allowedGroupIds"`
	WhitelistGroupIDs []int64 `bun:"whitelist_group_ids,array" json:"whitelistGroupIds"`
	BlacklistGroupIDs []int64 `bun:"blacklist_group_ids,array" json:"blacklistGroupIds"`
}

// Restricted reports whether the record carries a positive allow-list at all.
func (v GroupVisibility) Restricted() bool {
	return len(v.AllowedGroupIDs) > 0 || len(v.WhitelistGroupIDs) > 0
}

// AllowsGroup applies the allow/white/black rules for one group.
func (v GroupVisibility) AllowsGroup(groupID uint64) bool {
	id := int64(groupID)
	for _, b := range v.BlacklistGroupIDs {
		if b == id {
			return false
		}
	}
	if !v.Restricted() {
		return true
	}
	for _, a := range v.AllowedGroupIDs {
		if a == id {
			return true
		}
	}
	for _, w := range v.WhitelistGroupIDs {
		if w == id {
			return true
		}
	}
	return false
}

// Article is a knowledge article on the learning side of the content
// dichotomy.
type Article struct {
	bun.BaseModel `bun:"table:articles"`
	GroupVisibility

	ID                  uint64     `bun:",pk,autoincrement" json:"id"`
	Title               string     `bun:",notnull"          json:"title"`
	Body                string     `bun:""                  json:"body"`
	Order               int        `bun:"content_order"     json:"order"`
	PublishDate         time.Time  `bun:",notnull"          json:"publishDate"`
	ExpiryDate          *time.Time `bun:""                  json:"expiryDate"`
	Tags                []string   `bun:",array"            json:"tags"`
	FeaturedImageURL    string     `bun:""                  json:"featuredImageUrl"`
	FeaturedImageWidth  int        `bun:""                  json:"featuredImageWidth"`
	FeaturedImageHeight int        `bun:""                  json:"featuredImageHeight"`

	Translations []*ArticleTranslation `bun:"rel:has-many,join:id=content_id" json:"-"`
}

func (*Article) RefType() enum.RefType { return enum.RefTypeArticle }

// CultureItem is a culture story on the brand side of the dichotomy.
type CultureItem struct {
	bun.BaseModel `bun:"table:culture_items"`
	GroupVisibility

	ID          uint64     `bun:",pk,autoincrement" json:"id"`
	Title       string     `bun:",notnull"          json:"title"`
	Body        string     `bun:""                  json:"body"`
	PublishDate time.Time  `bun:",notnull"          json:"publishDate"`
	ExpiryDate  *time.Time `bun:""                  json:"expiryDate"`
	Tags        []string   `bun:",array"            json:"tags"`
	ImageURL    string     `bun:""                  json:"imageUrl"`
	ImageWidth  int        `bun:""                  json:"imageWidth"`
	ImageHeight int        `bun:""                  json:"imageHeight"`

	Translations []*CultureTranslation `bun:"rel:has-many,join:id=content_id" json:"-"`
}

func (*CultureItem) RefType() enum.RefType { return enum.RefTypeCulture }

// Tip is a tip of the day, optionally linked to exactly one article or
// culture item whose own visibility and window rules apply transitively.
type Tip struct {
	bun.BaseModel `bun:"table:tips"`
	GroupVisibility

	ID          uint64     `bun:",pk,autoincrement" json:"id"`
	Title       string     `bun:",notnull"          json:"title"`
	Content     string     `bun:""                  json:"content"`
	Message     string     `bun:""                  json:"message"`
	PublishDate time.Time  `bun:",notnull"          json:"publishDate"`
	ExpiryDate  *time.Time `bun:""                  json:"expiryDate"`
	ArticleID   *uint64    `bun:"article_id"        json:"articleId"`
	CultureID   *uint64    `bun:"culture_id"        json:"cultureId"`

	Article      *Article          `bun:"rel:belongs-to,join:article_id=id" json:"-"`
	Culture      *CultureItem      `bun:"rel:belongs-to,join:culture_id=id" json:"-"`
	Translations []*TipTranslation `bun:"rel:has-many,join:id=content_id"   json:"-"`
}

// Tips surface through the article/culture dichotomy of whatever they
// link; an unlinked tip counts as an article-side reference.
func (*Tip) RefType() enum.RefType { return enum.RefTypeArticle }

// Challenge is a daily challenge definition. Its publish date doubles as
// the challenge's validity marker in the feed.
type Challenge struct {
	bun.BaseModel `bun:"table:challenges"`

	ID          uint64    `bun:",pk,autoincrement" json:"id"`
	PublishDate time.Time `bun:",notnull"          json:"publishDate"`
	ArticleID   *uint64   `bun:"article_id"        json:"articleId"`
	CultureID   *uint64   `bun:"culture_id"        json:"cultureId"`

	Article *Article     `bun:"rel:belongs-to,join:article_id=id" json:"-"`
	Culture *CultureItem `bun:"rel:belongs-to,join:culture_id=id" json:"-"`
}

// ChallengeResult records one user's completion of a challenge.
type ChallengeResult struct {
	bun.BaseModel `bun:"table:challenge_results"`

	ID          uint64    `bun:",pk,autoincrement" json:"id"`
	ChallengeID uint64    `bun:",notnull"          json:"challengeId"`
	UserID      uint64    `bun:",notnull"          json:"userId"`
	Score       int       `bun:",notnull"          json:"score"`
	CreatedAt   time.Time `bun:",notnull"          json:"createdAt"`

	Challenge *Challenge `bun:"rel:belongs-to,join:challenge_id=id" json:"-"`
}

func (*ChallengeResult) RefType() enum.RefType { return enum.RefTypeUser }

// LevelUpEvent records a user reaching a new level and rank.
type LevelUpEvent struct {
	bun.BaseModel `bun:"table:level_up_events"`

	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	UserID    uint64    `bun:",notnull"          json:"userId"`
	Level     int       `bun:",notnull"          json:"level"`
	Rank      int       `bun:",notnull"          json:"rank"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}

func (*LevelUpEvent) RefType() enum.RefType { return enum.RefTypeUser }

// Video is a posted video referenced by NewVideo entries.
type Video struct {
	bun.BaseModel `bun:"table:videos"`

	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	Title     string    `bun:",notnull"          json:"title"`
	URL       string    `bun:",notnull"          json:"url"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}

func (*Video) RefType() enum.RefType { return enum.RefTypeVideo }

// MediaResource is one attachment of a media post.
type MediaResource struct {
	bun.BaseModel `bun:"table:media_resources"`

	ID      uint64 `bun:",pk,autoincrement" json:"id"`
	MediaID uint64 `bun:",notnull"          json:"mediaId"`
	URL     string `bun:",notnull"          json:"url"`
	Kind    string `bun:",notnull"          json:"kind"`
}

// Media is a community media post. Non-text media without at least one
// resource is treated as incomplete and never surfaces anywhere.
type Media struct {
	bun.BaseModel `bun:"table:media"`

	ID        uint64         `bun:",pk,autoincrement" json:"id"`
	Type      enum.MediaType `bun:",notnull"          json:"type"`
	Title     string         `bun:",notnull"          json:"title"`
	Content   string         `bun:""                  json:"content"`
	UserID    uint64         `bun:",notnull"          json:"userId"`
	Active    bool           `bun:",notnull"          json:"active"`
	CreatedAt time.Time      `bun:",notnull"          json:"createdAt"`

	Resources []*MediaResource `bun:"rel:has-many,join:id=media_id" json:"resources"`
}

func (*Media) RefType() enum.RefType { return enum.RefTypeMedia }

// Complete reports whether the media may surface at all. Text posts need
// no attached resources.
func (m *Media) Complete() bool {
	return m.Type == enum.MediaTypeText || len(m.Resources) > 0
}
