package repositories

import (
	"context"

	"github.com/edublog/blog-service/internal/models"
)

// UserPatch enumerates the fields a user update may change. Nil fields are
// left untouched.
type UserPatch struct {
	Nome     *string
	UserType *models.UserType
	Serie    *string
	Subject  *string
	Password *string
}

// PostPatch enumerates the fields a post update may change.
type PostPatch struct {
	Title      *string
	Content    *string
	EditedByID *uint
}

// UserRepository is the persistence contract for users. Reads return
// (nil, nil) when the record does not exist; absence is never an error.
type UserRepository interface {
	// Create hashes the plaintext password and persists the user. The
	// plaintext never reaches the store.
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Update loads the record, applies the non-nil patch fields and
	// persists. Returns (nil, nil) when the id does not exist.
	Update(ctx context.Context, id uint, patch UserPatch) (*models.User, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uint) (bool, error)
	// ComparePassword verifies a plaintext against a stored hash.
	ComparePassword(password, hash string) bool
}

// PostRepository is the persistence contract for posts. List, GetByID and
// Search return posts joined with their author's public identity.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id uint, patch PostPatch) (*models.Post, error)
	Delete(ctx context.Context, id uint) (bool, error)
	// Search matches the term as a substring of title or content,
	// newest first.
	Search(ctx context.Context, term string) ([]models.Post, error)
}

// Repository aggregates the entity repositories.
type Repository interface {
	User() UserRepository
	Post() PostRepository
	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager initializes connections and hands out the repository.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
}
