package database

import (
	"github.com/uptrace/bun"
	"github.com/wilyamx/thinkittwice/internal/database/models"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	feed        *models.FeedModel
	group       *models.GroupModel
	content     *models.ContentModel
	media       *models.MediaModel
	readMark    *models.ReadMarkModel
	interaction *models.InteractionModel
	permission  *models.PermissionModel
	quiz        *models.QuizModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		feed:        models.NewFeed(db, logger),
		group:       models.NewGroup(db, logger),
		content:     models.NewContent(db, logger),
		media:       models.NewMedia(db, logger),
		readMark:    models.NewReadMark(db, logger),
		interaction: models.NewInteraction(db, logger),
		permission:  models.NewPermission(db, logger),
		quiz:        models.NewQuiz(db, logger),
	}
}

// Feed returns the feed entry model repository.
func (r *Repository) Feed() *models.FeedModel {
	return r.feed
}

// Group returns the user group model repository.
func (r *Repository) Group() *models.GroupModel {
	return r.group
}

// Content returns the content model repository.
func (r *Repository) Content() *models.ContentModel {
	return r.content
}

// Media returns the media model repository.
func (r *Repository) Media() *models.MediaModel {
	return r.media
}

// ReadMark returns the read mark model repository.
func (r *Repository) ReadMark() *models.ReadMarkModel {
	return r.readMark
}

// Interaction returns the interaction model repository.
func (r *Repository) Interaction() *models.InteractionModel {
	return r.interaction
}

// Permission returns the permission model repository.
func (r *Repository) Permission() *models.PermissionModel {
	return r.permission
}

// Quiz returns the quiz model repository.
func (r *Repository) Quiz() *models.QuizModel {
	return r.quiz
}
