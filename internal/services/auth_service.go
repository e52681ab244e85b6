package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edublog/blog-service/internal/auth"
	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
)

type authService struct {
	repo   repositories.Repository
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthService(repo repositories.Repository, tokens *auth.TokenService, logger *slog.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password fail identically so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !s.repo.User().ComparePassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "user_type", user.UserType)

	return &models.LoginResponse{
		Token:    token,
		UserType: user.UserType,
		ID:       user.ID,
		Nome:     user.Nome,
	}, nil
}
