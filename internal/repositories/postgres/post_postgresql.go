package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/edublog/blog-service/internal/cache"
	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
)

type PostPostgreSQL struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewPostPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.PostRepository {
	return &PostPostgreSQL{
		db:    db,
		cache: cache.NewCacheHelper(redisClient, "post:"),
	}
}

// preloadAuthor joins the author with only its public columns; the
// password hash stays out of every joined row.
func preloadAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("CreatedBy", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, nome, email, user_type, serie, subject, created_at, updated_at")
	})
}

func (r *PostPostgreSQL) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var cached models.Post
	if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	var post models.Post
	err := preloadAuthor(r.db.WithContext(ctx)).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &post, cache.PostCacheTTL)
	return &post, nil
}

func (r *PostPostgreSQL) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := preloadAuthor(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update loads the post, merges the provided fields, stamps edited_at and
// persists. Returns (nil, nil) when the id does not exist.
func (r *PostPostgreSQL) Update(ctx context.Context, id uint, patch repositories.PostPatch) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load post for update: %w", err)
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.EditedByID != nil {
		post.EditedByID = patch.EditedByID
	}
	now := time.Now()
	post.EditedAt = &now

	if err := r.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf("id:%d", id))
	return &post, nil
}

func (r *PostPostgreSQL) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete post: %w", result.Error)
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf("id:%d", id))
	return result.RowsAffected > 0, nil
}

func (r *PostPostgreSQL) Search(ctx context.Context, term string) ([]models.Post, error) {
	pattern := "%" + term + "%"
	var posts []models.Post
	err := preloadAuthor(r.db.WithContext(ctx)).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return posts, nil
}
