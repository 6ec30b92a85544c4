package rest

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/uptrace/bunrouter"
	"github.com/wilyamx/thinkittwice/internal/feed"
	"github.com/wilyamx/thinkittwice/internal/rest/handler"
	"go.uber.org/zap"
)

// NewServer creates the feed API handler. Authentication happens
// upstream; handlers trust the resolved user-id header.
func NewServer(feedService *feed.Service, logger *zap.Logger) http.Handler {
	feedHandler := handler.NewFeedHandler(feedService, logger)

	router := bunrouter.New()

	router.WithGroup("/v1", func(g *bunrouter.Group) {
		g.GET("/feeds", feedHandler.ListLegacy)
	})

	router.WithGroup("/v2", func(g *bunrouter.Group) {
		g.GET("/feeds", feedHandler.ListCurrent)
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}
