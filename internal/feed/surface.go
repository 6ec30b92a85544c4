package feed

import (
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

// Surface selects one of the two response contracts sharing the
// filtering core. They differ in excluded types, pinned handling,
// count sourcing and a few structural rules.
type Surface int

const (
	// SurfaceLegacy is the detail view: umbrella interaction counts,
	// peer quiz events and text media excluded, pinned never shown.
	SurfaceLegacy Surface = iota + 1
	// SurfaceCurrent is the list view: per-content interaction counts,
	// only challenge/tip/content/media kinds, pinned visible through the
	// unread category and the pinned board.
	SurfaceCurrent
)

func (s Surface) String() string {
	switch s {
	case SurfaceLegacy:
		return "legacy"
	case SurfaceCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// ExcludedTypes returns the surface's type exclusion set for pipeline
// stage 7.
func (s Surface) ExcludedTypes() map[enum.FeedType]struct{} {
	switch s {
	case SurfaceLegacy:
		return map[enum.FeedType]struct{}{
			enum.FeedTypePeerQuizCompleted: {},
		}
	case SurfaceCurrent:
		return map[enum.FeedType]struct{}{
			enum.FeedTypePeerLevelUp:        {},
			enum.FeedTypePeerQuizCompleted:  {},
			enum.FeedTypeRankingUpdated:     {},
			enum.FeedTypeNewVideo:           {},
			enum.FeedTypeEvaluationReminder: {},
		}
	default:
		return map[enum.FeedType]struct{}{}
	}
}

// narrow applies the surface-specific structural rules that sit outside
// the shared pipeline.
func (s Surface) narrow(entries []*types.FeedEntry) []*types.FeedEntry {
	switch s {
	case SurfaceLegacy:
		kept := make([]*types.FeedEntry, 0, len(entries))
		for _, entry := range entries {
			// Pinned entries never surface on the detail view, not even
			// through the unread category.
			if entry.IsPinned {
				continue
			}
			if media := entry.Media(); media != nil && media.Type == enum.MediaTypeText {
				continue
			}
			kept = append(kept, entry)
		}
		return kept
	case SurfaceCurrent:
		return RequireExpiry(entries)
	default:
		return entries
	}
}
