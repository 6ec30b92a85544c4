package service

import (
	"context"
	"fmt"

	"github.com/wilyamx/thinkittwice/internal/database/models"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"go.uber.org/zap"
)

// FeedService loads feed entries and resolves each row's reference into
// its typed payload. Everything downstream of this service works on
// fully hydrated entries and never touches ref ids again.
type FeedService struct {
	feed    *models.FeedModel
	content *models.ContentModel
	media   *models.MediaModel
	group   *models.GroupModel
	logger  *zap.Logger
}

// NewFeed creates a new feed service.
func NewFeed(
	feed *models.FeedModel, content *models.ContentModel,
	media *models.MediaModel, group *models.GroupModel, logger *zap.Logger,
) *FeedService {
	return &FeedService{
		feed:    feed,
		content: content,
		media:   media,
		group:   group,
		logger:  logger.Named("feed_service"),
	}
}

// GetCandidates returns the hydrated candidate set for a group, newest
// first. Visibility filtering is the engine's job, not ours.
func (s *FeedService) GetCandidates(ctx context.Context, groupID uint64) ([]*types.FeedEntry, error) {
	entries, err := s.feed.GetEntriesForGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.Hydrate(ctx, entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetEntry returns one hydrated entry.
func (s *FeedService) GetEntry(ctx context.Context, id uint64) (*types.FeedEntry, error) {
	entry, err := s.feed.GetEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Hydrate(ctx, []*types.FeedEntry{entry}); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetPinned returns the hydrated entries pinned under a tag, scoped to
// the requesting group or user, with their pin tags attached.
func (s *FeedService) GetPinned(
	ctx context.Context, tagID, groupID, userID uint64,
) ([]*types.FeedEntry, error) {
	entries, err := s.feed.GetPinnedEntries(ctx, tagID, groupID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.Hydrate(ctx, entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Hydrate resolves references into typed payloads, attaches acting users
// and pin tags. Entries whose referenced record no longer exists keep a
// nil payload; renderers decide how to degrade.
func (s *FeedService) Hydrate(ctx context.Context, entries []*types.FeedEntry) error {
	refIDs := make(map[enum.FeedType][]uint64, enum.FeedTypeCount)
	actorIDs := make([]uint64, 0, len(entries))
	pinnedIDs := make([]uint64, 0)

	for _, entry := range entries {
		if entry.RefID != 0 {
			refIDs[entry.Type] = append(refIDs[entry.Type], entry.RefID)
		}
		if entry.UserID != nil {
			actorIDs = append(actorIDs, *entry.UserID)
		}
		if entry.IsPinned {
			pinnedIDs = append(pinnedIDs, entry.ID)
		}
	}

	tips, err := s.content.GetTips(ctx, refIDs[enum.FeedTypeDailyTip])
	if err != nil {
		return fmt.Errorf("failed to hydrate tips: %w", err)
	}

	results, err := s.content.GetChallengeResults(ctx, refIDs[enum.FeedTypeChallengeCompleted])
	if err != nil {
		return fmt.Errorf("failed to hydrate challenge results: %w", err)
	}

	levelUps, err := s.content.GetLevelUpEvents(ctx, refIDs[enum.FeedTypePeerLevelUp])
	if err != nil {
		return fmt.Errorf("failed to hydrate level up events: %w", err)
	}

	// Quiz entries reference the article whose quiz was taken.
	quizArticleIDs := refIDs[enum.FeedTypePeerQuizCompleted]

	// A NewContent reference points at either side of the article/culture
	// dichotomy. Articles resolve first; ids left over are culture items.
	articles, err := s.content.GetArticles(ctx,
		append(append([]uint64{}, refIDs[enum.FeedTypeNewContent]...), quizArticleIDs...))
	if err != nil {
		return fmt.Errorf("failed to hydrate articles: %w", err)
	}

	var cultureIDs []uint64
	for _, id := range refIDs[enum.FeedTypeNewContent] {
		if _, ok := articles[id]; !ok {
			cultureIDs = append(cultureIDs, id)
		}
	}

	cultures, err := s.content.GetCultureItems(ctx, cultureIDs)
	if err != nil {
		return fmt.Errorf("failed to hydrate culture items: %w", err)
	}

	videos, err := s.content.GetVideos(ctx, refIDs[enum.FeedTypeNewVideo])
	if err != nil {
		return fmt.Errorf("failed to hydrate videos: %w", err)
	}

	media, err := s.media.GetByIDs(ctx, refIDs[enum.FeedTypeNewMedia])
	if err != nil {
		return fmt.Errorf("failed to hydrate media: %w", err)
	}

	actors, err := s.group.GetUsers(ctx, actorIDs)
	if err != nil {
		return fmt.Errorf("failed to hydrate actors: %w", err)
	}

	pinTags, err := s.feed.GetPinnedTagIDs(ctx, pinnedIDs)
	if err != nil {
		return fmt.Errorf("failed to hydrate pin tags: %w", err)
	}

	for _, entry := range entries {
		switch entry.Type {
		case enum.FeedTypeDailyTip:
			if t, ok := tips[entry.RefID]; ok {
				entry.Ref = t
			}
		case enum.FeedTypeChallengeCompleted:
			if r, ok := results[entry.RefID]; ok {
				entry.Ref = r
			}
		case enum.FeedTypePeerLevelUp:
			if l, ok := levelUps[entry.RefID]; ok {
				entry.Ref = l
			}
		case enum.FeedTypePeerQuizCompleted:
			if a, ok := articles[entry.RefID]; ok {
				entry.Ref = a
			}
		case enum.FeedTypeNewContent:
			if a, ok := articles[entry.RefID]; ok {
				entry.Ref = a
			} else if c, ok := cultures[entry.RefID]; ok {
				entry.Ref = c
			}
		case enum.FeedTypeNewVideo:
			if v, ok := videos[entry.RefID]; ok {
				entry.Ref = v
			}
		case enum.FeedTypeNewMedia:
			if m, ok := media[entry.RefID]; ok {
				entry.Ref = m
			}
		case enum.FeedTypeRankingUpdated, enum.FeedTypeEvaluationReminder:
			// Reference-free.
		}

		if entry.UserID != nil {
			entry.Actor = actors[*entry.UserID]
		}
		if entry.IsPinned {
			entry.PinnedTagIDs = pinTags[entry.ID]
		}
	}

	return nil
}
