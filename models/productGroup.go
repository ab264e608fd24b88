package models

import "time"

// ProductGroup is a secondary filter axis within a product type.
type ProductGroup struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `json:"name" validate:"required,min=2"`
	ProductTypeID uint        `json:"product_type_id" validate:"required"`
	ProductType   ProductType `gorm:"foreignKey:ProductTypeID" json:"product_type,omitempty"`
	Products      []Product   `gorm:"foreignKey:ProductGroupID" json:"products,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
