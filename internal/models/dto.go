package models

// ===== RESPONSE DTOs =====

// PublicUser is the sanitized user view returned by the API.
// The password hash never leaves the persistence layer boundary.
type PublicUser struct {
	ID       uint     `json:"id"`
	Nome     string   `json:"nome"`
	Email    string   `json:"email"`
	UserType UserType `json:"user_type"`
	Serie    *string  `json:"serie"`
	Subject  *string  `json:"subject"`
}

// Public returns the sanitized view of a user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		UserType: u.UserType,
		Serie:    u.Serie,
		Subject:  u.Subject,
	}
}

type LoginResponse struct {
	Token    string   `json:"token"`
	UserType UserType `json:"user_type"`
	ID       uint     `json:"id"`
	Nome     string   `json:"nome"`
}

type MessageUserResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

type MessagePostResponse struct {
	Message string `json:"message"`
	Post    *Post  `json:"post"`
}

type HomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
