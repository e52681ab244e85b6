package services

import "errors"

// Sentinel errors consumed by the handler error mappers.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNoUpdateData       = errors.New("no valid fields provided for update")
	ErrMissingSearchTerm  = errors.New("search term is required")
)
