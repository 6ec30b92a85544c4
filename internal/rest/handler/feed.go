package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/uptrace/bunrouter"
	"github.com/wilyamx/thinkittwice/internal/database/models"
	"github.com/wilyamx/thinkittwice/internal/database/types/enum"
	"github.com/wilyamx/thinkittwice/internal/feed"
	"github.com/wilyamx/thinkittwice/internal/feed/render"
	"go.uber.org/zap"
)

// UserIDHeader carries the authenticated user id resolved by the
// upstream authenticator. Missing or zero means unauthenticated.
const UserIDHeader = "X-User-Id"

// FeedHandler serves the two feed surfaces.
type FeedHandler struct {
	feed   *feed.Service
	logger *zap.Logger
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feedService *feed.Service, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		feed:   feedService,
		logger: logger.Named("rest_feed"),
	}
}

// ListLegacy serves GET /v1/feeds, the legacy detail surface.
func (h *FeedHandler) ListLegacy(w http.ResponseWriter, req bunrouter.Request) error {
	return h.list(w, req, feed.SurfaceLegacy)
}

// ListCurrent serves GET /v2/feeds, the current list surface.
func (h *FeedHandler) ListCurrent(w http.ResponseWriter, req bunrouter.Request) error {
	return h.list(w, req, feed.SurfaceCurrent)
}

func (h *FeedHandler) list(w http.ResponseWriter, req bunrouter.Request, surface feed.Surface) error {
	query := req.URL.Query()

	groupID, err := parseID(query.Get("user_group_id"))
	if err != nil || groupID == 0 {
		http.Error(w, "user_group_id is required", http.StatusBadRequest)
		return nil
	}

	feedID, err := parseID(query.Get("feed_id"))
	if err != nil {
		http.Error(w, "invalid feed_id", http.StatusBadRequest)
		return nil
	}

	cursor, err := feed.ParseCursor(query.Get("oldest_feed_id"))
	if err != nil {
		http.Error(w, "invalid oldest_feed_id", http.StatusBadRequest)
		return nil
	}

	var pinnedTagID uint64
	if surface == feed.SurfaceCurrent {
		pinnedTagID, err = parseID(query.Get("pinned_tag_id"))
		if err != nil {
			http.Error(w, "invalid pinned_tag_id", http.StatusBadRequest)
			return nil
		}
	}

	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return nil
	}

	userID, _ := parseID(req.Header.Get(UserIDHeader))

	feedReq := feed.Request{
		Surface:      surface,
		UserID:       userID,
		GroupID:      groupID,
		FeedID:       feedID,
		OldestFeedID: cursor,
		Category:     enum.Category(query.Get("category")),
		PinnedTagID:  pinnedTagID,
		Language:     query.Get("language_code"),
		Include:      render.ParseInclude(query.Get("include")),
		Limit:        limit,
	}

	page, err := h.feed.Query(req.Context(), feedReq)
	if err != nil {
		return h.writeError(w, err)
	}

	return bunrouter.JSON(w, page)
}

// writeError translates engine errors into HTTP statuses.
func (h *FeedHandler) writeError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, feed.ErrNotAuthenticated):
		http.Error(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, models.ErrGroupNotFound), errors.Is(err, models.ErrFeedNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, feed.ErrBadCursor):
		http.Error(w, "invalid cursor", http.StatusBadRequest)
	default:
		h.logger.Error("Failed to query feed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}

	return nil
}

func parseID(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}

	return limit, nil
}
