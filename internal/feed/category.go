package feed

import (
	"strings"

	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
)

// Classify narrows the visible set by the requested category. Unknown
// category values are a no-op on every surface, never an error.
func Classify(
	category enum.Category, entries []*types.FeedEntry, readSet map[uint64]struct{},
) []*types.FeedEntry {
	switch category {
	case enum.CategoryUnread:
		kept := make([]*types.FeedEntry, 0, len(entries))
		for _, entry := range entries {
			switch entry.Type {
			case enum.FeedTypeNewContent, enum.FeedTypeNewMedia, enum.FeedTypeDailyTip:
			default:
				continue
			}
			if _, read := readSet[entry.ID]; read {
				continue
			}
			kept = append(kept, entry)
		}
		return kept
	case enum.CategoryBrand:
		return keepTagged(entries, "brand")
	case enum.CategoryMarket:
		return keepTagged(entries, "market")
	case enum.CategoryCommunity:
		kept := make([]*types.FeedEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.Type == enum.FeedTypeNewMedia {
				kept = append(kept, entry)
			}
		}
		return kept
	default:
		return entries
	}
}

// keepTagged keeps content announcements whose linked item carries the
// tag. Matching is case-insensitive and exact: "branded" never matches
// "brand".
func keepTagged(entries []*types.FeedEntry, tag string) []*types.FeedEntry {
	kept := make([]*types.FeedEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != enum.FeedTypeNewContent {
			continue
		}
		for _, t := range entry.ContentTags() {
			if strings.EqualFold(t, tag) {
				kept = append(kept, entry)
				break
			}
		}
	}
	return kept
}

// RequireExpiry drops content announcements whose linked item has no
// expiry date. The list surface treats unset expiry as structurally
// invalid; other kinds pass through untouched.
func RequireExpiry(entries []*types.FeedEntry) []*types.FeedEntry {
	kept := make([]*types.FeedEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Type == enum.FeedTypeNewContent {
			if article := entry.LinkedArticle(); article != nil {
				if article.ExpiryDate == nil {
					continue
				}
			} else if culture := entry.LinkedCulture(); culture != nil {
				if culture.ExpiryDate == nil {
					continue
				}
			} else {
				continue
			}
		}
		kept = append(kept, entry)
	}
	return kept
}
