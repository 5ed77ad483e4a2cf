package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ldmoraes/minimal-blog-api/internal/models"
)

// CategoryStore handles category rows.
type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *CategoryStore) All(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}

// ByID returns the category, or (nil, nil) when absent.
func (s *CategoryStore) ByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &c, nil
}

// ByIDs returns the categories whose ids resolve; unknown ids are simply
// not part of the result.
func (s *CategoryStore) ByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("select categories by ids: %w", err)
	}
	return categories, nil
}

func (s *CategoryStore) Save(ctx context.Context, c *models.Category) error {
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes the category and its join-table rows; associated posts are
// untouched.
func (s *CategoryStore) Delete(ctx context.Context, c *models.Category) error {
	if err := s.db.WithContext(ctx).Select("Posts").Delete(c).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
