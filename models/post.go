package models

import "time"

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title" validate:"required,min=2"`
	Slug        string    `gorm:"uniqueIndex" json:"slug" validate:"required,min=2"`
	Content     string    `json:"content" validate:"required"`
	Thumbnail   string    `json:"thumbnail"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
