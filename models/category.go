package models

import "time"

type Category struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `json:"name" validate:"required,min=2"`
	Slug       string     `gorm:"uniqueIndex" json:"slug" validate:"required,min=2"`
	Image      string     `json:"image"`
	IsFeatured bool       `json:"is_featured"`
	ParentID   *uint      `json:"parent_id"`
	Parent     *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children   []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products   []Product  `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
