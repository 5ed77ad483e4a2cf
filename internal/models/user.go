package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a row in the users table. PostsCount is a read-only
// annotation computed by the store; it is never persisted.
type User struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	FirstName  string    `json:"firstName" gorm:"not null"`
	LastName   string    `json:"lastName" gorm:"not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	Posts      []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	PostsCount int64     `json:"postsCount" gorm:"->;-:migration"`
}

// BeforeCreate assigns a server-generated id so every storage engine gets
// the same uuid behavior.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CreateUserRequest is the JSON body for POST /api/users.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
