package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edublog/blog-service/internal/auth"
	"github.com/edublog/blog-service/internal/events"
	"github.com/edublog/blog-service/internal/lifecycle"
	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
	"github.com/edublog/blog-service/internal/services"
	"github.com/edublog/blog-service/internal/utils"
	"github.com/edublog/blog-service/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires the full HTTP stack over an in-memory store.
type testEnv struct {
	router    *gin.Engine
	repo      *memoryRepository
	tokens    *auth.TokenService
	publisher *events.MockEventPublisher
	state     *lifecycle.State
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	slogLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogLogger)

	repo := newMemoryRepository()
	tokens := auth.NewTokenService("test-secret")
	publisher := events.NewMockEventPublisher(slogLogger)
	serviceManager := services.NewDefaultServiceManager(repo, tokens, validator.New(), publisher, "blog.events", slogLogger)
	handlerManager := NewHandlerManager(serviceManager, tokens, repo.User(), logger, false)

	state := lifecycle.NewState()
	state.Set(lifecycle.PhaseReady)

	router := gin.New()
	SetupMiddleware(router, logger, state)
	handlerManager.SetupRoutes(router)

	return &testEnv{
		router:    router,
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		state:     state,
	}
}

// do performs a request against the test router. A non-empty token is
// sent as a bearer credential.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns its id.
func (e *testEnv) register(t *testing.T, nome, email string, userType models.UserType) uint {
	t.Helper()

	w := e.do(t, http.MethodPost, "/users/register", "", gin.H{
		"nome":      nome,
		"email":     email,
		"password":  "senha123",
		"user_type": string(userType),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s failed: status %d, body %s", email, w.Code, w.Body.String())
	}

	var resp models.MessageUserResponse
	decodeBody(t, w, &resp)
	return resp.User.ID
}

// login authenticates through the API and returns the bearer token.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "senha123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s failed: status %d, body %s", email, w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	decodeBody(t, w, &resp)
	return resp.Token
}

// professorToken registers a PROFESSOR account and logs it in.
func (e *testEnv) professorToken(t *testing.T) string {
	t.Helper()
	e.register(t, "Prof", "prof@escola.com", models.UserTypeProfessor)
	return e.login(t, "prof@escola.com")
}

// alunoToken registers an ALUNO account and logs it in.
func (e *testEnv) alunoToken(t *testing.T) string {
	t.Helper()
	e.register(t, "Aluno", "aluno@escola.com", models.UserTypeAluno)
	return e.login(t, "aluno@escola.com")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// assertError checks the status code and error envelope of a failure.
func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	if resp.Status != "error" {
		t.Errorf("status field = %q, want error", resp.Status)
	}
	if resp.Message != message {
		t.Errorf("message = %q, want %q", resp.Message, message)
	}
}

// ===== in-memory store =====

type memoryRepository struct {
	users *memoryUserRepository
	posts *memoryPostRepository
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		users: &memoryUserRepository{users: make(map[uint]*models.User)},
		posts: &memoryPostRepository{posts: make(map[uint]*models.Post)},
	}
}

func (m *memoryRepository) User() repositories.UserRepository { return m.users }
func (m *memoryRepository) Post() repositories.PostRepository { return m.posts }
func (m *memoryRepository) Ping(ctx context.Context) error    { return nil }
func (m *memoryRepository) Close() error                      { return nil }

type memoryUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func (m *memoryUserRepository) Create(_ context.Context, user *models.User, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

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

func (m *memoryUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepository) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for id := uint(1); id <= m.nextID; id++ {
		if user, ok := m.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (m *memoryUserRepository) Update(_ context.Context, id uint, patch repositories.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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

func (m *memoryUserRepository) Delete(_ context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *memoryUserRepository) ComparePassword(password, hash string) bool {
	return auth.ComparePassword(password, hash)
}

type memoryPostRepository struct {
	mu     sync.Mutex
	posts  map[uint]*models.Post
	nextID uint
}

func (m *memoryPostRepository) Create(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	post.ID = m.nextID
	post.CreatedAt = time.Now()

	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *memoryPostRepository) GetByID(_ context.Context, id uint) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (m *memoryPostRepository) List(_ context.Context) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Post, 0, len(m.posts))
	for id := m.nextID; id >= 1; id-- {
		if post, ok := m.posts[id]; ok {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (m *memoryPostRepository) Update(_ context.Context, id uint, patch repositories.PostPatch) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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

func (m *memoryPostRepository) Delete(_ context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[id]; !ok {
		return false, nil
	}
	delete(m.posts, id)
	return true, nil
}

func (m *memoryPostRepository) Search(_ context.Context, term string) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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
