package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/edublog/blog-service/internal/auth"
	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// mockRepository is an in-memory implementation of the repository
// contracts, matching their (nil, nil) absence semantics. Setting err
// makes every operation fail with it.
type mockRepository struct {
	users *mockUserRepository
	posts *mockPostRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users: &mockUserRepository{users: make(map[uint]*models.User)},
		posts: &mockPostRepository{posts: make(map[uint]*models.Post)},
	}
}

func (m *mockRepository) User() repositories.UserRepository { return m.users }
func (m *mockRepository) Post() repositories.PostRepository { return m.posts }
func (m *mockRepository) Ping(ctx context.Context) error    { return nil }
func (m *mockRepository) Close() error                      { return nil }

type mockUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
	err    error
}

func (m *mockUserRepository) Create(_ context.Context, user *models.User, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	m.nextID++
	user.ID = m.nextID
	user.PasswordHash = hash
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.User, 0, len(m.users))
	for id := uint(1); id <= m.nextID; id++ {
		if user, ok := m.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (m *mockUserRepository) Update(_ context.Context, id uint, patch repositories.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}

	if patch.Nome != nil {
		user.Nome = *patch.Nome
	}
	if patch.UserType != nil {
		user.UserType = *patch.UserType
	}
	if patch.Serie != nil {
		user.Serie = patch.Serie
	}
	if patch.Subject != nil {
		user.Subject = patch.Subject
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) Delete(_ context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *mockUserRepository) ComparePassword(password, hash string) bool {
	return auth.ComparePassword(password, hash)
}

type mockPostRepository struct {
	mu     sync.Mutex
	posts  map[uint]*models.Post
	nextID uint
	err    error
}

func (m *mockPostRepository) Create(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	m.nextID++
	post.ID = m.nextID
	post.CreatedAt = time.Now()

	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *mockPostRepository) GetByID(_ context.Context, id uint) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostRepository) List(_ context.Context) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	// Newest first, mirroring the created_at DESC ordering of the store.
	out := make([]models.Post, 0, len(m.posts))
	for id := m.nextID; id >= 1; id-- {
		if post, ok := m.posts[id]; ok {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (m *mockPostRepository) Update(_ context.Context, id uint, patch repositories.PostPatch) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	post.EditedByID = patch.EditedByID
	now := time.Now()
	post.EditedAt = &now

	copied := *post
	return &copied, nil
}

func (m *mockPostRepository) Delete(_ context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.posts[id]; !ok {
		return false, nil
	}
	delete(m.posts, id)
	return true, nil
}

func (m *mockPostRepository) Search(_ context.Context, term string) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	lowered := strings.ToLower(term)
	out := make([]models.Post, 0)
	for id := m.nextID; id >= 1; id-- {
		post, ok := m.posts[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(post.Title), lowered) ||
			strings.Contains(strings.ToLower(post.Content), lowered) {
			out = append(out, *post)
		}
	}
	return out, nil
}
