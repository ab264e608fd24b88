package models

import "time"

// ProductType is a sub-classification inside a category ("loại sản phẩm"),
// used both for admin organization and storefront filtering.
type ProductType struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name" validate:"required,min=2"`
	Slug       string    `gorm:"uniqueIndex" json:"slug" validate:"required,min=2"`
	CategoryID uint      `json:"category_id" validate:"required"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Products   []Product `gorm:"foreignKey:ProductTypeID" json:"products,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
