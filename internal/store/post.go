package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ldmoraes/minimal-blog-api/internal/models"
)

// PostStore handles post rows and their category associations.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// eager preloads author and categories, the attachment every read path uses.
func (s *PostStore) eager(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Author").Preload("Categories")
}

// Create inserts the post and its join-table rows. The Author field is
// skipped: the author row already exists and is referenced by AuthorID.
func (s *PostStore) Create(ctx context.Context, p *models.Post) error {
	if err := s.db.WithContext(ctx).Omit("Author").Create(p).Error; err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (s *PostStore) All(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.eager(ctx).Order("posts.id ASC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	normalizeCategories(posts)
	return posts, nil
}

func (s *PostStore) ByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.eager(ctx).Where("author_id = ?", authorID).Order("posts.id ASC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("select posts by author: %w", err)
	}
	normalizeCategories(posts)
	return posts, nil
}

// SearchTitle matches title against %term%. Case sensitivity follows the
// storage engine's LIKE semantics.
func (s *PostStore) SearchTitle(ctx context.Context, term string) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.eager(ctx).Where("title LIKE ?", "%"+term+"%").Order("posts.id ASC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	normalizeCategories(posts)
	return posts, nil
}

// ByID returns the post with eager attachment, or (nil, nil) when absent.
func (s *PostStore) ByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := s.eager(ctx).Where("posts.id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select post: %w", err)
	}
	if p.Categories == nil {
		p.Categories = []models.Category{}
	}
	return &p, nil
}

// Save persists mutated scalar fields; associations are left untouched.
func (s *PostStore) Save(ctx context.Context, p *models.Post) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes the post and its join-table rows. The referenced author and
// categories stay.
func (s *PostStore) Delete(ctx context.Context, p *models.Post) error {
	if err := s.db.WithContext(ctx).Select("Categories").Delete(p).Error; err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// normalizeCategories keeps the wire format stable: a post without
// categories serializes as [] rather than null.
func normalizeCategories(posts []models.Post) {
	for i := range posts {
		if posts[i].Categories == nil {
			posts[i].Categories = []models.Category{}
		}
	}
}
