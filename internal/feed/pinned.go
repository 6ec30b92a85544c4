package feed

import (
	"sort"

	"github.com/wilyamx/thinkittwice/internal/database/types"
)

// RankPinned orders a pinned board: entries the viewer has not read
// first, then by the underlying content's publish date ascending, then
// by id ascending. The ascending order is intentional and opposite to
// the main timeline; the board surfaces the oldest pending items first.
func RankPinned(entries []*types.FeedEntry, readSet map[uint64]struct{}) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		_, aRead := readSet[a.ID]
		_, bRead := readSet[b.ID]
		if aRead != bRead {
			return !aRead
		}

		aDate := a.ContentPublishDate()
		bDate := b.ContentPublishDate()
		switch {
		case aDate != nil && bDate != nil && !aDate.Equal(*bDate):
			return aDate.Before(*bDate)
		case aDate == nil && bDate != nil:
			return false
		case aDate != nil && bDate == nil:
			return true
		}

		return a.ID < b.ID
	})
}
