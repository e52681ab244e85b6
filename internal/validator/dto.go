package validator

import (
	"github.com/edublog/blog-service/internal/models"
)

// LoginRequest carries login credentials. Presence is checked by the auth
// service so the missing-field failure keeps its own message.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserCreateRequest is the registration payload.
type UserCreateRequest struct {
	Nome     string          `json:"nome" validate:"required,min=1,max=30"`
	Email    string          `json:"email" validate:"required,email,max=100"`
	Password string          `json:"password" validate:"required,min=6"`
	UserType models.UserType `json:"user_type" validate:"required,user_type"`
	Serie    *string         `json:"serie" validate:"omitempty,max=30"`
	Subject  *string         `json:"subject" validate:"omitempty,max=30"`
}

// UserUpdateRequest is the partial update payload for a user. Email and
// password changes are not accepted through this endpoint.
type UserUpdateRequest struct {
	Nome     *string          `json:"nome" validate:"omitempty,min=1,max=30"`
	UserType *models.UserType `json:"user_type" validate:"omitempty,user_type"`
	Serie    *string          `json:"serie" validate:"omitempty,max=30"`
	Subject  *string          `json:"subject" validate:"omitempty,max=30"`
}

// HasUpdates reports whether at least one recognized field was submitted.
func (r *UserUpdateRequest) HasUpdates() bool {
	return r.Nome != nil || r.UserType != nil || r.Serie != nil || r.Subject != nil
}

// PostCreateRequest is the post creation payload. The author is injected
// server-side from the authenticated identity.
type PostCreateRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// PostUpdateRequest is the partial update payload for a post.
type PostUpdateRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=100"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// HasUpdates reports whether at least one recognized field was submitted.
func (r *PostUpdateRequest) HasUpdates() bool {
	return r.Title != nil || r.Content != nil
}
