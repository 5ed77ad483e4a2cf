package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ldmoraes/minimal-blog-api/internal/apperr"
	"github.com/ldmoraes/minimal-blog-api/internal/models"
)

// UserStore handles user rows.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// withPostsCount selects users annotated with a correlated count of the
// posts they authored.
func (s *UserStore) withPostsCount(ctx context.Context) *gorm.DB {
	sub := s.db.Model(&models.Post{}).
		Select("count(*)").
		Where("posts.author_id = users.id")

	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*, (?) AS posts_count", sub)
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflictf("email already in use")
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// All returns every user ordered by id, each with PostsCount set.
func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.withPostsCount(ctx).Order("users.id ASC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

// ByID returns the user with PostsCount set, or (nil, nil) when absent.
func (s *UserStore) ByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.withPostsCount(ctx).Where("users.id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// ByEmail returns the user with the given email, or (nil, nil) when absent.
func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return &u, nil
}

func (s *UserStore) Delete(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Delete(u).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
