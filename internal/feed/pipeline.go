package feed

import (
	"sort"
	"time"

	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/pkg/utils"
)

// Stage is one exclusion predicate of the visibility pipeline. Keep
// returns true when the entry survives the stage. Commuting stages may
// be reordered without changing the final set; the fixed order exists
// for testability.
type Stage struct {
	Name     string
	Commutes bool
	Keep     func(env *Env, entry *types.FeedEntry) bool
}

// Stages returns the ordered visibility pipeline. Deduplication and
// descending-id ordering are applied afterwards by VisibleSet and are
// the only order-dependent steps.
func Stages() []Stage {
	return []Stage{
		{Name: "group_scope", Commutes: true, Keep: keepGroupScope},
		{Name: "foreign_challenge", Commutes: true, Keep: keepOwnChallenges},
		{Name: "group_lists", Commutes: true, Keep: keepGroupLists},
		{Name: "publish_window", Commutes: true, Keep: keepPublished},
		{Name: "media_complete", Commutes: true, Keep: keepCompleteMedia},
		{Name: "expiry", Commutes: true, Keep: keepUnexpired},
		{Name: "type_exclusion", Commutes: true, Keep: keepIncludedTypes},
		{Name: "reminder_gate", Commutes: true, Keep: keepFreshReminders},
		{Name: "pinned_exclusion", Commutes: true, Keep: keepUnpinned},
	}
}

// VisibleSet runs every stage over the candidates, deduplicates by id
// and orders the survivors newest first. Pure over hydrated entries.
func VisibleSet(env *Env, candidates []*types.FeedEntry) []*types.FeedEntry {
	stages := Stages()
	seen := make(map[uint64]struct{}, len(candidates))
	visible := make([]*types.FeedEntry, 0, len(candidates))

entries:
	for _, entry := range candidates {
		for _, stage := range stages {
			if !stage.Keep(env, entry) {
				continue entries
			}
		}

		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}
		visible = append(visible, entry)
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].ID > visible[j].ID
	})

	return visible
}

// keepGroupScope keeps entries scoped to the viewer's group or
// broadcast to all groups.
func keepGroupScope(env *Env, entry *types.FeedEntry) bool {
	return entry.GroupID == nil || *entry.GroupID == env.Viewer.GroupID
}

// keepOwnChallenges drops completed-challenge entries of other users.
func keepOwnChallenges(env *Env, entry *types.FeedEntry) bool {
	if entry.Type != enum.FeedTypeChallengeCompleted {
		return true
	}
	return entry.UserID != nil && *entry.UserID == env.Viewer.UserID
}

// keepGroupLists applies allow/white/blacklist scoping to tips, and
// transitively to the tip's linked article or culture item.
func keepGroupLists(env *Env, entry *types.FeedEntry) bool {
	if entry.Type != enum.FeedTypeDailyTip {
		return true
	}

	tip := entry.Tip()
	if tip == nil {
		return true
	}

	if !tip.AllowsGroup(env.Viewer.GroupID) {
		return false
	}
	if tip.Article != nil && !tip.Article.AllowsGroup(env.Viewer.GroupID) {
		return false
	}
	if tip.Culture != nil && !tip.Culture.AllowsGroup(env.Viewer.GroupID) {
		return false
	}

	return true
}

// keepPublished drops tips and content announcements whose publish date
// is still in the viewer's local future.
func keepPublished(env *Env, entry *types.FeedEntry) bool {
	today := env.LocalToday()
	offset := env.Viewer.TimezoneOffset

	switch entry.Type {
	case enum.FeedTypeDailyTip:
		tip := entry.Tip()
		if tip == nil {
			return true
		}
		if utils.LocalDate(tip.PublishDate, offset).After(today) {
			return false
		}
		if tip.Article != nil && utils.LocalDate(tip.Article.PublishDate, offset).After(today) {
			return false
		}
		if tip.Culture != nil && utils.LocalDate(tip.Culture.PublishDate, offset).After(today) {
			return false
		}
		return true
	case enum.FeedTypeNewContent:
		publish := entry.ContentPublishDate()
		if publish == nil {
			return true
		}
		return !utils.LocalDate(*publish, offset).After(today)
	default:
		return true
	}
}

// keepCompleteMedia drops media announcements whose media is inactive
// or incomplete. A missing media record passes; the renderer degrades
// to an empty payload instead.
func keepCompleteMedia(_ *Env, entry *types.FeedEntry) bool {
	if entry.Type != enum.FeedTypeNewMedia {
		return true
	}

	media := entry.Media()
	if media == nil {
		return true
	}

	return media.Active && media.Complete()
}

// keepUnexpired drops entries whose local expiry date has passed. For
// completed challenges the challenge's publish date is the expiry.
func keepUnexpired(env *Env, entry *types.FeedEntry) bool {
	today := env.LocalToday()
	offset := env.Viewer.TimezoneOffset

	expired := func(expiry *time.Time) bool {
		return expiry != nil && utils.LocalDate(*expiry, offset).Before(today)
	}

	switch entry.Type {
	case enum.FeedTypeDailyTip:
		tip := entry.Tip()
		if tip == nil {
			return true
		}
		if expired(tip.ExpiryDate) {
			return false
		}
		if tip.Article != nil && expired(tip.Article.ExpiryDate) {
			return false
		}
		if tip.Culture != nil && expired(tip.Culture.ExpiryDate) {
			return false
		}
		return true
	case enum.FeedTypeNewContent:
		if article := entry.LinkedArticle(); article != nil {
			return !expired(article.ExpiryDate)
		}
		if culture := entry.LinkedCulture(); culture != nil {
			return !expired(culture.ExpiryDate)
		}
		return true
	case enum.FeedTypeChallengeCompleted:
		result := entry.ChallengeResult()
		if result == nil || result.Challenge == nil {
			return true
		}
		return !utils.LocalDate(result.Challenge.PublishDate, offset).Before(today)
	default:
		return true
	}
}

// retrievable applies the gates that hold even for direct-by-id
// lookups: expiry and media completeness. An entry failing either is
// treated as not found rather than filtered.
func retrievable(env *Env, entry *types.FeedEntry) bool {
	return keepUnexpired(env, entry) && keepCompleteMedia(env, entry)
}

// keepIncludedTypes applies the caller-supplied type exclusion set.
func keepIncludedTypes(env *Env, entry *types.FeedEntry) bool {
	_, excluded := env.Excluded[entry.Type]
	return !excluded
}

// keepFreshReminders gates evaluation reminders: invisible without the
// evaluation permission, and only the ones inside the reminder gap
// window survive for permitted users.
func keepFreshReminders(env *Env, entry *types.FeedEntry) bool {
	if entry.Type != enum.FeedTypeEvaluationReminder {
		return true
	}
	if !env.CanEvaluate {
		return false
	}
	return env.Now.Sub(entry.CreatedAt) <= env.ReminderGap
}

// keepUnpinned hides pinned entries from the default timeline. The
// unread category is the one place pinned entries remain visible.
func keepUnpinned(env *Env, entry *types.FeedEntry) bool {
	if env.Category == enum.CategoryUnread {
		return true
	}
	return !entry.IsPinned
}
