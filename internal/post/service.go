// Package post implements creation, lookup, update and deletion of posts.
package post

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ldmoraes/minimal-blog-api/internal/apperr"
	"github.com/ldmoraes/minimal-blog-api/internal/models"
	"github.com/ldmoraes/minimal-blog-api/internal/store"
)

// Service validates input and orchestrates the post, user and category
// stores.
type Service struct {
	posts      *store.PostStore
	users      *store.UserStore
	categories *store.CategoryStore
	log        *zap.Logger
}

func NewService(posts *store.PostStore, users *store.UserStore, categories *store.CategoryStore, log *zap.Logger) *Service {
	return &Service{posts: posts, users: users, categories: categories, log: log}
}

// Register creates a post for an existing author. Category ids that do not
// resolve are dropped silently; the post is created with whatever resolved.
func (s *Service) Register(ctx context.Context, title, body string, isPublished bool, authorID string, categoryIDs []string) (*models.Post, error) {
	if title == "" || body == "" {
		return nil, apperr.Validationf("title and body are required")
	}
	if authorID == "" {
		return nil, apperr.Validationf("authorId is required")
	}

	author, err := s.users.ByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	if author == nil {
		return nil, apperr.NotFoundf("author not found")
	}

	categories := []models.Category{}
	if len(categoryIDs) > 0 {
		categories, err = s.categories.ByIDs(ctx, categoryIDs)
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
	}

	p := &models.Post{
		Title:       title,
		Body:        body,
		IsPublished: isPublished,
		AuthorID:    author.ID,
		Categories:  categories,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	p.Author = author

	s.log.Info("post created",
		zap.String("post_id", p.ID),
		zap.String("author_id", author.ID),
		zap.Int("categories", len(categories)))

	return p, nil
}

// All returns every post ordered by id with author and categories attached.
func (s *Service) All(ctx context.Context) ([]models.Post, error) {
	return s.posts.All(ctx)
}

// ByAuthor returns the posts written by the given author.
func (s *Service) ByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return s.posts.ByAuthor(ctx, authorID)
}

// SearchByTitle returns the posts whose title contains term.
func (s *Service) SearchByTitle(ctx context.Context, term string) ([]models.Post, error) {
	return s.posts.SearchTitle(ctx, term)
}

// ByID returns the post with eager attachment, or (nil, nil) when no row
// matches.
func (s *Service) ByID(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.ByID(ctx, id)
}

// Update overwrites the provided fields. Empty title or body means "leave
// unchanged"; isPublished applies whenever non-nil, including false.
func (s *Service) Update(ctx context.Context, id, title, body string, isPublished *bool) (*models.Post, error) {
	p, err := s.posts.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFoundf("post not found")
	}

	if title != "" {
		p.Title = title
	}
	if body != "" {
		p.Body = body
	}
	if isPublished != nil {
		p.IsPublished = *isPublished
	}

	if err := s.posts.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the post and its category associations, failing if it does
// not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.posts.ByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFoundf("post not found")
	}
	if err := s.posts.Delete(ctx, p); err != nil {
		return err
	}
	s.log.Info("post deleted", zap.String("post_id", id))
	return nil
}
