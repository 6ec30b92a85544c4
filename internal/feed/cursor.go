package feed

import (
	"fmt"
	"strconv"

	"github.com/wilyamx/thinkittwice/internal/database/types"
)

// ParseCursor parses the oldest-feed-id watermark. Empty means "no
// cursor"; anything non-numeric is ErrBadCursor on every surface.
func ParseCursor(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}

	cursor, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCursor, raw)
	}

	return cursor, nil
}

// applyCursor restricts the ordered set to entries strictly older than
// the watermark. Zero means no restriction. Because entries are already
// id-ordered, the result is a strict suffix of the uncursored set.
func applyCursor(entries []*types.FeedEntry, oldestFeedID uint64) []*types.FeedEntry {
	if oldestFeedID == 0 {
		return entries
	}

	kept := make([]*types.FeedEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID < oldestFeedID {
			kept = append(kept, entry)
		}
	}

	return kept
}
