package feed

import (
	"context"
	"time"

	"github.com/wilyamx/thinkittwice/internal/database"
	"github.com/wilyamx/thinkittwice/internal/database/models"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/internal/feed/render"
	"github.com/wilyamx/thinkittwice/internal/setup/config"
	"go.uber.org/zap"
)

// Request carries everything one feed query depends on. It is built by
// the HTTP layer and passed explicitly; nothing is read from ambient
// request state.
type Request struct {
	Surface      Surface
	UserID       uint64
	GroupID      uint64
	FeedID       uint64
	OldestFeedID uint64
	Category     enum.Category
	PinnedTagID  uint64
	Language     string
	Include      render.Include
	Limit        int
}

// Page is one rendered page plus the size of the full visible set as a
// pagination side-channel.
type Page struct {
	Entries []*render.Entry `json:"entries"`
	Total   int             `json:"total"`
}

// Service composes the pipeline, classifier, pinned path, cursor and
// renderers into the two query operations the HTTP layer consumes. It
// holds no per-request state and is safe for concurrent use.
type Service struct {
	db          database.Client
	renderers   map[Surface]*render.Renderer
	reminderGap time.Duration
	legacyLimit int
	pageSize    int
	logger      *zap.Logger
}

// NewService creates the feed query service. The two surfaces share one
// dispatch table and differ in their count strategy.
func NewService(
	db database.Client, trendSource render.TrendSource, cfg *config.Feed, logger *zap.Logger,
) *Service {
	model := db.Model()

	return &Service{
		db: db,
		renderers: map[Surface]*render.Renderer{
			SurfaceLegacy: render.New(
				render.NewFeedLogCounts(model.Interaction()), trendSource,
				model.Media(), model.Quiz(), cfg.AssetBaseURL, logger),
			SurfaceCurrent: render.New(
				render.NewContentLogCounts(model.Interaction()), trendSource,
				model.Media(), model.Quiz(), cfg.AssetBaseURL, logger),
		},
		reminderGap: time.Duration(cfg.ReminderGapDays) * 24 * time.Hour,
		legacyLimit: cfg.LegacyPageLimit,
		pageSize:    cfg.PageSize,
		logger:      logger.Named("feed_service"),
	}
}

// Query returns one rendered page of the viewer's timeline. A non-zero
// FeedID renders that single entry; a non-zero PinnedTagID switches to
// the pinned board path.
func (s *Service) Query(ctx context.Context, req Request) (*Page, error) {
	if req.UserID == 0 {
		return nil, ErrNotAuthenticated
	}

	group, err := s.db.Model().Group().Get(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	if req.FeedID != 0 {
		entry, err := s.QueryByID(ctx, req, req.FeedID)
		if err != nil {
			return nil, err
		}
		return &Page{Entries: []*render.Entry{entry}, Total: 1}, nil
	}

	if req.PinnedTagID != 0 {
		return s.queryPinned(ctx, req, group)
	}

	candidates, err := s.db.Service().Feed().GetCandidates(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	readSet, err := s.db.Model().ReadMark().ReadSet(ctx, req.UserID, entryIDs(candidates))
	if err != nil {
		return nil, err
	}

	canEvaluate, err := s.db.Model().Permission().HasPermission(ctx, req.UserID, types.PermissionAddEvaluation)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Viewer: Viewer{
			UserID:         req.UserID,
			GroupID:        req.GroupID,
			TimezoneOffset: group.TimezoneOffset,
			Language:       req.Language,
		},
		Now:         time.Now().UTC(),
		Excluded:    req.Surface.ExcludedTypes(),
		Category:    req.Category,
		CanEvaluate: canEvaluate,
		ReminderGap: s.reminderGap,
	}

	visible, total := Assemble(env, req.Surface, candidates, readSet, req.OldestFeedID)
	visible = s.clamp(req, visible)

	rendered, err := s.renderers[req.Surface].Page(ctx, s.renderContext(req, group, readSet), visible)
	if err != nil {
		return nil, err
	}

	return &Page{Entries: rendered, Total: total}, nil
}

// QueryByID renders a single entry, bypassing aggregation. Expiry and
// media-completeness gating still apply; an expired, incomplete or
// unknown entry is not found.
func (s *Service) QueryByID(ctx context.Context, req Request, id uint64) (*render.Entry, error) {
	if req.UserID == 0 {
		return nil, ErrNotAuthenticated
	}

	group, err := s.db.Model().Group().Get(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	entry, err := s.db.Service().Feed().GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Viewer: Viewer{
			UserID:         req.UserID,
			GroupID:        req.GroupID,
			TimezoneOffset: group.TimezoneOffset,
			Language:       req.Language,
		},
		Now: time.Now().UTC(),
	}
	if !retrievable(env, entry) {
		return nil, models.ErrFeedNotFound
	}

	readSet, err := s.db.Model().ReadMark().ReadSet(ctx, req.UserID, []uint64{entry.ID})
	if err != nil {
		return nil, err
	}

	return s.renderers[req.Surface].Entry(ctx, s.renderContext(req, group, readSet), entry)
}

// queryPinned serves the pinned board: tag-scoped entries ranked
// unread-first, publish date ascending, id ascending. No expiry or
// visibility gating beyond group/user scoping.
func (s *Service) queryPinned(ctx context.Context, req Request, group *types.UserGroup) (*Page, error) {
	entries, err := s.db.Service().Feed().GetPinned(ctx, req.PinnedTagID, req.GroupID, req.UserID)
	if err != nil {
		return nil, err
	}

	readSet, err := s.db.Model().ReadMark().ReadSet(ctx, req.UserID, entryIDs(entries))
	if err != nil {
		return nil, err
	}

	RankPinned(entries, readSet)

	total := len(entries)
	entries = s.clamp(req, entries)

	rendered, err := s.renderers[req.Surface].Page(ctx, s.renderContext(req, group, readSet), entries)
	if err != nil {
		return nil, err
	}

	return &Page{Entries: rendered, Total: total}, nil
}

// Assemble is the pure composition of pipeline, classifier, surface
// narrowing and cursor over a hydrated candidate set. It returns the
// page candidates and the pre-cursor visible count.
func Assemble(
	env *Env, surface Surface, candidates []*types.FeedEntry,
	readSet map[uint64]struct{}, oldestFeedID uint64,
) ([]*types.FeedEntry, int) {
	visible := VisibleSet(env, candidates)
	visible = Classify(env.Category, visible, readSet)
	visible = surface.narrow(visible)
	total := len(visible)
	visible = applyCursor(visible, oldestFeedID)

	return visible, total
}

// clamp bounds the page size: the caller's limit, the configured page
// size as the default, and the hard legacy cap on the detail surface.
func (s *Service) clamp(req Request, entries []*types.FeedEntry) []*types.FeedEntry {
	limit := req.Limit
	if limit <= 0 {
		limit = s.pageSize
	}
	if req.Surface == SurfaceLegacy && limit > s.legacyLimit {
		limit = s.legacyLimit
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

func (s *Service) renderContext(
	req Request, group *types.UserGroup, readSet map[uint64]struct{},
) *render.Context {
	return &render.Context{
		UserID:   req.UserID,
		GroupID:  req.GroupID,
		Group:    group,
		Language: req.Language,
		Include:  req.Include,
		ReadSet:  readSet,
	}
}

func entryIDs(entries []*types.FeedEntry) []uint64 {
	ids := make([]uint64, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return ids
}
