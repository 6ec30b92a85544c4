package render

import (
	"strings"
	"time"

	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

// Include selects the optional derived fields computed orthogonally to
// type dispatch.
type Include struct {
	Ref        bool
	IsRead     bool
	Tags       bool
	QuizResult bool
	// MoreDetails switches the legacy detail view to its verbose shape
	// (localized titles, full content bodies).
	MoreDetails bool
}

// ParseInclude parses the comma-separated include flag list. Unknown
// tokens are ignored.
func ParseInclude(raw string) Include {
	var inc Include
	for _, token := range strings.Split(raw, ",") {
		switch strings.TrimSpace(token) {
		case "ref":
			inc.Ref = true
		case "is_read":
			inc.IsRead = true
		case "tags":
			inc.Tags = true
		case "quiz_result":
			inc.QuizResult = true
		case "more_details":
			inc.MoreDetails = true
		}
	}
	return inc
}

// Actor is the rendered identity behind a peer event: a user, or the
// company for group-broadcast kinds.
type Actor struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Position string `json:"position,omitempty"`
}

// Image is a rendered image reference with its dimensions when known.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// MediaPayload is the re-fetched media item. A deleted media record
// renders as the empty struct, never as an error.
type MediaPayload struct {
	ID        uint64         `json:"id,omitempty"`
	Type      enum.MediaType `json:"type,omitempty"`
	Title     string         `json:"title,omitempty"`
	Content   string         `json:"content,omitempty"`
	Resources []Image        `json:"resources,omitempty"`
}

// Entry is the rendered, client-facing form of one feed entry. Fields
// are populated per type; both surfaces share the shape and differ only
// in which fields their renderers fill.
type Entry struct {
	ID        uint64        `json:"id"`
	Type      enum.FeedType `json:"type"`
	CreatedAt time.Time     `json:"created_at"`

	Title       string     `json:"title,omitempty"`
	Content     string     `json:"content,omitempty"`
	Message     string     `json:"message,omitempty"`
	Order       int        `json:"order,omitempty"`
	PublishDate *time.Time `json:"publish_date,omitempty"`

	User  *Actor `json:"user,omitempty"`
	Level int    `json:"level,omitempty"`
	Rank  int    `json:"rank,omitempty"`
	Trend *int   `json:"trend,omitempty"`
	Score *int   `json:"score,omitempty"`

	FeaturedImage *Image        `json:"featured_image,omitempty"`
	Images        []Image       `json:"images,omitempty"`
	Media         *MediaPayload `json:"media,omitempty"`
	VideoURL      string        `json:"video_url,omitempty"`

	LikeCount    int  `json:"like_count"`
	CommentCount int  `json:"comment_count"`
	Liked        bool `json:"liked"`
	Commented    bool `json:"commented"`

	// Include-flag fields.
	Ref        *types.RefDescriptor `json:"ref,omitempty"`
	IsRead     *bool                `json:"is_read,omitempty"`
	Tags       []string             `json:"tags,omitempty"`
	QuizResult *types.QuizSummary   `json:"quiz_result,omitempty"`
}
