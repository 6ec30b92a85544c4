package database

import (
	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/service"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	feed *service.FeedService
}

// NewService creates a new service instance with all services.
func NewService(_ *bun.DB, repository *Repository, logger *zap.Logger) *Service {
	return &Service{
		feed: service.NewFeed(
			repository.Feed(),
			repository.Content(),
			repository.Media(),
			repository.Group(),
			logger,
		),
	}
}

// Feed returns the feed hydration service.
func (s *Service) Feed() *service.FeedService {
	return s.feed
}
