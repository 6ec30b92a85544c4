package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/wilyamx/thinkittwice/internal/database/models"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/internal/trend"
	"github.com/wilyamx/thinkittwice/pkg/utils"
	"go.uber.org/zap"
)

// TrendSource supplies the external per-user trend indicator.
type TrendSource interface {
	GetTrend(ctx context.Context, userID uint64) (int, error)
}

// Context is the consumer context one page is rendered for. ReadSet is
// the viewer's precomputed read marks over the page's entries.
type Context struct {
	UserID   uint64
	GroupID  uint64
	Group    *types.UserGroup
	Language string
	Include  Include
	ReadSet  map[uint64]struct{}
}

// Renderer maps feed entries to client payloads through a fixed
// per-type dispatch table. Renderers only read; a rendered page leaves
// the store untouched.
type Renderer struct {
	counts CountSource
	trend  TrendSource
	media  *models.MediaModel
	quiz   *models.QuizModel
	base   string
	logger *zap.Logger
}

// New creates a renderer over the given count strategy. base is the
// asset base URL used for absolute-URL rewriting.
func New(
	counts CountSource, trendSource TrendSource,
	media *models.MediaModel, quiz *models.QuizModel,
	base string, logger *zap.Logger,
) *Renderer {
	return &Renderer{
		counts: counts,
		trend:  trendSource,
		media:  media,
		quiz:   quiz,
		base:   base,
		logger: logger.Named("renderer"),
	}
}

type renderFunc func(ctx context.Context, r *Renderer, rc *Context, entry *types.FeedEntry, out *Entry) error

// dispatch is indexed by FeedType-1. The array is sized by the type
// count so adding a feed type without a renderer fails to compile.
var dispatch = [enum.FeedTypeCount]renderFunc{
	enum.FeedTypeChallengeCompleted - 1: renderChallengeCompleted,
	enum.FeedTypeDailyTip - 1:           renderDailyTip,
	enum.FeedTypePeerLevelUp - 1:        renderPeerLevelUp,
	enum.FeedTypePeerQuizCompleted - 1:  renderPeerQuizCompleted,
	enum.FeedTypeNewContent - 1:         renderNewContent,
	enum.FeedTypeRankingUpdated - 1:     renderRankingUpdated,
	enum.FeedTypeNewVideo - 1:           renderNewVideo,
	enum.FeedTypeNewMedia - 1:           renderNewMedia,
	enum.FeedTypeEvaluationReminder - 1: renderEvaluationReminder,
}

// Entry renders one feed entry for the given context.
func (r *Renderer) Entry(ctx context.Context, rc *Context, entry *types.FeedEntry) (*Entry, error) {
	if !entry.Type.Valid() {
		return nil, fmt.Errorf("unknown feed type %d", entry.Type)
	}

	out := &Entry{
		ID:        entry.ID,
		Type:      entry.Type,
		CreatedAt: entry.CreatedAt,
	}

	if err := dispatch[entry.Type-1](ctx, r, rc, entry, out); err != nil {
		return nil, fmt.Errorf("failed to render %s entry %d: %w", entry.Type, entry.ID, err)
	}

	engagement, err := r.counts.Engagement(ctx, entry, rc.UserID, rc.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to count engagement for entry %d: %w", entry.ID, err)
	}
	out.LikeCount = engagement.LikeCount
	out.CommentCount = engagement.CommentCount
	out.Liked = engagement.Liked
	out.Commented = engagement.Commented

	if err := r.applyIncludes(ctx, rc, entry, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Page renders the entries of one page in parallel, preserving order.
func (r *Renderer) Page(ctx context.Context, rc *Context, entries []*types.FeedEntry) ([]*Entry, error) {
	rendered := make([]*Entry, len(entries))

	p := pool.New().WithContext(ctx)
	for i, entry := range entries {
		p.Go(func(ctx context.Context) error {
			out, err := r.Entry(ctx, rc, entry)
			if err != nil {
				return err
			}
			rendered[i] = out
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return rendered, nil
}

// applyIncludes computes the optional derived fields, orthogonally to
// the per-type dispatch.
func (r *Renderer) applyIncludes(
	ctx context.Context, rc *Context, entry *types.FeedEntry, out *Entry,
) error {
	if rc.Include.Ref {
		out.Ref = entry.RefDescriptor()
	}

	if rc.Include.IsRead {
		_, read := rc.ReadSet[entry.ID]
		out.IsRead = &read
	}

	if rc.Include.Tags {
		out.Tags = entry.ContentTags()
	}

	if rc.Include.QuizResult {
		if article := entry.LinkedArticle(); article != nil {
			result, err := r.quiz.LatestResult(ctx, rc.UserID, article.ID)
			if err != nil {
				return fmt.Errorf("failed to load quiz result for entry %d: %w", entry.ID, err)
			}
			if result != nil {
				out.QuizResult = &types.QuizSummary{
					Points: result.Points,
					Result: utils.Round2(result.Score),
				}
			}
		}
	}

	return nil
}

func (r *Renderer) actor(entry *types.FeedEntry) *Actor {
	if entry.Actor == nil {
		return nil
	}
	return &Actor{
		ID:       entry.Actor.ID,
		Name:     entry.Actor.Name,
		Avatar:   AbsoluteURL(r.base, entry.Actor.AvatarPath),
		Position: entry.Actor.Position,
	}
}

func renderChallengeCompleted(_ context.Context, r *Renderer, rc *Context, entry *types.FeedEntry, out *Entry) error {
	out.User = r.actor(entry)

	result := entry.ChallengeResult()
	if result == nil {
		return nil
	}

	score := result.Score
	out.Score = &score

	if result.Challenge == nil {
		return nil
	}
	if article := result.Challenge.Article; article != nil {
		out.Title = article.Title
		if tr := articleTranslation(article.Translations, rc.Language); tr != nil {
			out.Title = tr.Title
		}
	} else if culture := result.Challenge.Culture; culture != nil {
		out.Title = culture.Title
		if tr := cultureTranslation(culture.Translations, rc.Language); tr != nil {
			out.Title = tr.Title
		}
	}

	return nil
}

func renderDailyTip(_ context.Context, r *Renderer, rc *Context, entry *types.FeedEntry, out *Entry) error {
	tip := entry.Tip()
	if tip == nil {
		return nil
	}

	out.Title = tip.Title
	out.Content = tip.Content
	out.Message = tip.Message
	if tr := tipTranslation(tip.Translations, rc.Language); tr != nil {
		out.Title = tr.Title
		out.Content = tr.Content
		out.Message = tr.Message
	}

	publish := tip.PublishDate
	out.PublishDate = &publish

	// -1 distinguishes an unlinked tip from a linked article at order 0.
	out.Order = -1
	if tip.Article != nil {
		out.Order = tip.Article.Order
	}

	return nil
}

func renderPeerLevelUp(ctx context.Context, r *Renderer, rc *Context, entry *types.FeedEntry, out *Entry) error {
	out.User = r.actor(entry)

	if event, ok := entry.Ref.(*types.LevelUpEvent); ok {
		out.Level = event.Level
		out.Rank = event.Rank
	}

	value := trend.Missing
	if entry.UserID != nil {
		cached, err := r.trend.GetTrend(ctx, *entry.UserID)
		if err != nil {
			// Trend is decoration; a cache failure never fails the page.
			r.logger.Warn("Failed to read trend", zap.Uint64("userID", *entry.UserID), zap.Error(err))
			cached = trend.Missing
		}
		value = cached
	}
	out.Trend = &value

	if out.User != nil {
		out.Title = levelUpTitle(rc.Language, out.User.Name, out.Level)
	}

	return nil
}

func renderPeerQuizCompleted(_ context.Context, r *Renderer, rc *Context, entry *types.FeedEntry, out *Entry) error {
	out.User = r.actor(entry)

	var articleTitle string
	if article := entry.LinkedArticle(); article != nil {
		articleTitle = article.Title
		if tr := articleTranslation(article.Translations, rc.Language); tr != nil {
			articleTitle = tr.Title
		}
	}

	if out.User != nil {
		out.Title = quizTitle(rc.Language, out.User.Name, articleTitle)
	} else {
		out.Title = articleTitle
	}

	return nil
}

func renderNewContent(_ context.Context, r *Renderer, rc *Context, entry *types.FeedEntry, out *Entry) error {
	if article := entry.LinkedArticle(); article != nil {
		out.Title = article.Title
		body := article.Body
		if tr := articleTranslation(article.Translations, rc.Language); tr != nil {
			out.Title = tr.Title
			if tr.Content != "" {
				body = tr.Content
			}
		}

		publish := article.PublishDate
		out.PublishDate = &publish
		out.Order = article.Order

		for _, url := range ExtractImageURLs(r.base, body) {
			out.Images = append(out.Images, Image{URL: url})
		}
		if article.FeaturedImageURL != "" {
			out.FeaturedImage = &Image{
				URL:    AbsoluteURL(r.base, article.FeaturedImageURL),
				Width:  article.FeaturedImageWidth,
				Height: article.FeaturedImageHeight,
			}
		}
		if rc.Include.MoreDetails {
			out.Content = body
		}

		return nil
	}

	if culture := entry.LinkedCulture(); culture != nil {
		out.Title = culture.Title
		body := culture.Body
		if tr := cultureTranslation(culture.Translations, rc.Language); tr != nil {
			out.Title = tr.Title
			if tr.Content != "" {
				body = tr.Content
			}
		}

		publish := culture.PublishDate
		out.PublishDate = &publish

		for _, url := range ExtractImageURLs(r.base, body) {
			out.Images = append(out.Images, Image{URL: url})
		}
		if culture.ImageURL != "" {
			out.FeaturedImage = &Image{
				URL:    AbsoluteURL(r.base, culture.ImageURL),
				Width:  culture.ImageWidth,
				Height: culture.ImageHeight,
			}
		}
		if rc.Include.MoreDetails {
			out.Content = body
		}
	}

	return nil
}

func renderRankingUpdated(_ context.Context, r *Renderer, rc *Context, _ *types.FeedEntry, out *Entry) error {
	if rc.Group != nil && rc.Group.Company != nil {
		company := rc.Group.Company
		out.User = &Actor{
			ID:     company.ID,
			Name:   company.Name,
			Avatar: AbsoluteURL(r.base, company.AvatarPath),
		}
	}

	return nil
}

func renderNewVideo(_ context.Context, r *Renderer, _ *Context, entry *types.FeedEntry, out *Entry) error {
	if video, ok := entry.Ref.(*types.Video); ok {
		out.Title = video.Title
		out.VideoURL = AbsoluteURL(r.base, video.URL)
	}

	return nil
}

func renderNewMedia(ctx context.Context, r *Renderer, _ *Context, entry *types.FeedEntry, out *Entry) error {
	// Media is always re-fetched at render time; the hydrated payload
	// may predate a deletion.
	media, err := r.media.Get(ctx, entry.RefID)
	if err != nil {
		if errors.Is(err, models.ErrMediaNotFound) {
			out.Media = &MediaPayload{}
			return nil
		}
		return err
	}

	payload := &MediaPayload{
		ID:      media.ID,
		Type:    media.Type,
		Title:   media.Title,
		Content: media.Content,
	}
	for _, resource := range media.Resources {
		payload.Resources = append(payload.Resources, Image{URL: AbsoluteURL(r.base, resource.URL)})
	}
	out.Media = payload

	return nil
}

func renderEvaluationReminder(_ context.Context, _ *Renderer, rc *Context, _ *types.FeedEntry, out *Entry) error {
	text := reminderText(rc.Language)
	out.Title = text.Title
	out.Content = text.Content

	return nil
}
