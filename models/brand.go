package models

import "time"

// Brand is scoped to a category: "TOTO" only makes sense under sanitary ware.
type Brand struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name" validate:"required,min=2"`
	Slug       string    `gorm:"uniqueIndex" json:"slug" validate:"required,min=2"`
	Logo       string    `json:"logo"`
	CategoryID uint      `json:"category_id" validate:"required"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Products   []Product `gorm:"foreignKey:BrandID" json:"products,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
