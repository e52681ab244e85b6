package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
	"github.com/edublog/blog-service/internal/validator"
)

type userService struct {
	repo          repositories.Repository
	validator     *validator.Validator
	notifications NotificationEventService
	logger        *slog.Logger
}

func NewUserService(repo repositories.Repository, v *validator.Validator, notifications NotificationEventService, logger *slog.Logger) UserService {
	return &userService{
		repo:          repo,
		validator:     v,
		notifications: notifications,
		logger:        logger,
	}
}

// Register validates the payload, rejects duplicate emails and persists
// the new user with a hashed password.
func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	existing, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		Nome:     req.Nome,
		Email:    req.Email,
		UserType: req.UserType,
		Serie:    req.Serie,
		Subject:  req.Subject,
	}

	if err := s.repo.User().Create(ctx, user, req.Password); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "user_type", user.UserType)
	s.notifications.UserRegistered(ctx, user)

	return user, nil
}

func (s *userService) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *UpdateUserRequest) (*models.User, error) {
	if !req.HasUpdates() {
		return nil, ErrNoUpdateData
	}
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	patch := repositories.UserPatch{
		Nome:     req.Nome,
		UserType: req.UserType,
		Serie:    req.Serie,
		Subject:  req.Subject,
	}

	user, err := s.repo.User().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	removed, err := s.repo.User().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrUserNotFound
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
