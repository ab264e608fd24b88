package models

import "time"

// Collection groups product variants that share one design or pattern.
type Collection struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `json:"name" validate:"required,min=2"`
	Slug          string      `gorm:"uniqueIndex" json:"slug" validate:"required,min=2"`
	Image         string      `json:"image"`
	ProductTypeID uint        `json:"product_type_id" validate:"required"`
	ProductType   ProductType `gorm:"foreignKey:ProductTypeID" json:"product_type,omitempty"`
	Products      []Product   `gorm:"foreignKey:CollectionID" json:"products,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
