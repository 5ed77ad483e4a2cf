package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a row in the posts table. Author and Categories are
// loaded eagerly by the store on read paths.
type Post struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	Title       string     `json:"title" gorm:"not null"`
	Body        string     `json:"body" gorm:"not null"`
	IsPublished bool       `json:"is_published" gorm:"not null"`
	CreatedAt   time.Time  `json:"createdAt"`
	AuthorID    string     `json:"authorId" gorm:"size:36;not null"`
	Author      *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Categories  []Category `json:"categories" gorm:"many2many:post_categories"`
}

func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CreatePostRequest is the JSON body for POST /api/posts.
type CreatePostRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	IsPublished bool     `json:"is_published"`
	AuthorID    string   `json:"authorId"`
	CategoryIDs []string `json:"categoryIds"`
}

// UpdatePostRequest is the JSON body for PUT /api/posts/{id}. Empty title
// or body means "leave unchanged"; is_published applies whenever present,
// including an explicit false.
type UpdatePostRequest struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	IsPublished *bool  `json:"is_published"`
}
