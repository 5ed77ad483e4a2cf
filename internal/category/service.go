// Package category implements creation, lookup, update and deletion of
// categories.
package category

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ldmoraes/minimal-blog-api/internal/apperr"
	"github.com/ldmoraes/minimal-blog-api/internal/models"
	"github.com/ldmoraes/minimal-blog-api/internal/store"
)

// Service orchestrates the category store.
type Service struct {
	categories *store.CategoryStore
	log        *zap.Logger
}

func NewService(categories *store.CategoryStore, log *zap.Logger) *Service {
	return &Service{categories: categories, log: log}
}

// Create persists a category. Unlike users and posts, an empty name is not
// rejected here; only the storage layer's constraints apply.
func (s *Service) Create(ctx context.Context, name string) (*models.Category, error) {
	c := &models.Category{Name: name}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("category created", zap.String("category_id", c.ID))
	return c, nil
}

// All returns every category ordered by id.
func (s *Service) All(ctx context.Context) ([]models.Category, error) {
	return s.categories.All(ctx)
}

// ByID returns the category, or (nil, nil) when no row matches.
func (s *Service) ByID(ctx context.Context, id string) (*models.Category, error) {
	return s.categories.ByID(ctx, id)
}

// Update overwrites the name when it is non-empty after trimming; a blank
// name leaves the stored one.
func (s *Service) Update(ctx context.Context, id, name string) (*models.Category, error) {
	c, err := s.categories.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFoundf("category not found")
	}

	if strings.TrimSpace(name) != "" {
		c.Name = name
	}

	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the category and its join-table rows, failing if it does
// not exist. Posts keep existing without the association.
func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.categories.ByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperr.NotFoundf("category not found")
	}
	if err := s.categories.Delete(ctx, c); err != nil {
		return err
	}
	s.log.Info("category deleted", zap.String("category_id", id))
	return nil
}
