package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a row in the categories table. The Posts side of the
// relation exists so deletes clear the join table; it is never serialized.
type Category struct {
	ID    string `json:"id" gorm:"primaryKey;size:36"`
	Name  string `json:"name" gorm:"not null"`
	Posts []Post `json:"-" gorm:"many2many:post_categories"`
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CategoryRequest is the JSON body for POST and PUT /api/categories.
type CategoryRequest struct {
	Name string `json:"name"`
}
