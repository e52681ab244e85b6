package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
	"github.com/edublog/blog-service/internal/validator"
)

type postService struct {
	repo          repositories.Repository
	validator     *validator.Validator
	notifications NotificationEventService
	logger        *slog.Logger
}

func NewPostService(repo repositories.Repository, v *validator.Validator, notifications NotificationEventService, logger *slog.Logger) PostService {
	return &postService{
		repo:          repo,
		validator:     v,
		notifications: notifications,
		logger:        logger,
	}
}

// Create validates and persists a post authored by the acting user.
func (s *postService) Create(ctx context.Context, req *CreatePostRequest, actorID uint) (*models.Post, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		CreatedByID: actorID,
	}

	if err := s.repo.Post().Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created", "post_id", post.ID, "author_id", actorID)
	s.notifications.PostCreated(ctx, post)

	return post, nil
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.repo.Post().List(ctx)
}

func (s *postService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.repo.Post().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update applies a partial patch and records the acting user as the last
// editor.
func (s *postService) Update(ctx context.Context, id uint, req *UpdatePostRequest, actorID uint) (*models.Post, error) {
	if !req.HasUpdates() {
		return nil, ErrNoUpdateData
	}
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	patch := repositories.PostPatch{
		Title:      req.Title,
		Content:    req.Content,
		EditedByID: &actorID,
	}

	post, err := s.repo.Post().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	s.logger.Info("post updated", "post_id", post.ID, "editor_id", actorID)
	s.notifications.PostUpdated(ctx, post)

	return post, nil
}

func (s *postService) Delete(ctx context.Context, id uint, actorID uint) error {
	removed, err := s.repo.Post().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrPostNotFound
	}

	s.logger.Info("post deleted", "post_id", id, "actor_id", actorID)
	s.notifications.PostDeleted(ctx, id, actorID)
	return nil
}

func (s *postService) Search(ctx context.Context, term string) ([]models.Post, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrMissingSearchTerm
	}
	return s.repo.Post().Search(ctx, term)
}
