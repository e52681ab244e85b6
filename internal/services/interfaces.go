package services

import (
	"context"

	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Request shapes come from the validation layer.
type LoginRequest = validator.LoginRequest
type RegisterRequest = validator.UserCreateRequest
type UpdateUserRequest = validator.UserUpdateRequest
type CreatePostRequest = validator.PostCreateRequest
type UpdatePostRequest = validator.PostUpdateRequest

// ===== SERVICE INTERFACES =====

// AuthService authenticates credentials and issues tokens.
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*models.LoginResponse, error)
}

// UserService orchestrates registration and user CRUD.
type UserService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	List(ctx context.Context) ([]models.PublicUser, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, id uint, req *UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

// PostService orchestrates post CRUD and search. Author identity is
// always taken from the authenticated actor, never from the payload.
type PostService interface {
	Create(ctx context.Context, req *CreatePostRequest, actorID uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, id uint, req *UpdatePostRequest, actorID uint) (*models.Post, error)
	Delete(ctx context.Context, id uint, actorID uint) error
	Search(ctx context.Context, term string) ([]models.Post, error)
}

// NotificationEventService publishes domain events. Best-effort: callers
// log failures and carry on.
type NotificationEventService interface {
	UserRegistered(ctx context.Context, user *models.User)
	PostCreated(ctx context.Context, post *models.Post)
	PostUpdated(ctx context.Context, post *models.Post)
	PostDeleted(ctx context.Context, postID uint, actorID uint)
	Close() error
}

// ReportService builds XLSX exports of the platform's data.
type ReportService interface {
	UsersWorkbook(ctx context.Context) ([]byte, error)
	PostsWorkbook(ctx context.Context) ([]byte, error)
}
