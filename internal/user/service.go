// Package user implements registration, lookup and deletion of users.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ldmoraes/minimal-blog-api/internal/apperr"
	"github.com/ldmoraes/minimal-blog-api/internal/models"
	"github.com/ldmoraes/minimal-blog-api/internal/store"
)

// Service validates input and orchestrates the user store.
type Service struct {
	users *store.UserStore
	log   *zap.Logger
}

func NewService(users *store.UserStore, log *zap.Logger) *Service {
	return &Service{users: users, log: log}
}

// Register creates a user. All three fields are required and the email must
// contain "@". A duplicate email surfaces as a conflict, not a generic
// failure.
func (s *Service) Register(ctx context.Context, firstName, lastName, email string) (*models.User, error) {
	if firstName == "" || lastName == "" || email == "" {
		return nil, apperr.Validationf("firstName, lastName and email are required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperr.Validationf("invalid email format")
	}

	u := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// All returns every user ordered by id, annotated with postsCount.
func (s *Service) All(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}

// ByID returns the user annotated with postsCount, or (nil, nil) when no
// row matches.
func (s *Service) ByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.ByID(ctx, id)
}

// ByEmail returns the user with the given email, or (nil, nil) when absent.
func (s *Service) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.ByEmail(ctx, email)
}

// Delete removes the user, failing if it does not exist. Posts authored by
// the user are not cascaded; the engine's referential integrity decides.
func (s *Service) Delete(ctx context.Context, id string) error {
	u, err := s.users.ByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFoundf("user not found")
	}
	if err := s.users.Delete(ctx, u); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("user_id", id))
	return nil
}
