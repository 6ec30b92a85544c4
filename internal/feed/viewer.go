package feed

import (
	"time"

	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/pkg/utils"
)

// Viewer is the explicit request context threaded through the pipeline
// and renderers: who is asking, from which group, in which timezone and
// language. Nothing request-scoped lives anywhere else.
type Viewer struct {
	UserID         uint64
	GroupID        uint64
	TimezoneOffset int // whole hours relative to UTC
	Language       string
}

// Env is the evaluation context for one pipeline run. It is assembled
// once per request and read-only afterwards, so stages stay pure.
type Env struct {
	Viewer      Viewer
	Now         time.Time
	Excluded    map[enum.FeedType]struct{}
	Category    enum.Category
	CanEvaluate bool
	ReminderGap time.Duration
}

// LocalToday is the viewer's current calendar date.
func (env *Env) LocalToday() time.Time {
	return utils.LocalDate(env.Now, env.Viewer.TimezoneOffset)
}
