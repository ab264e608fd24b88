package models

import "time"

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required,min=2"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Images      []string  `json:"images" gorm:"type:text;serializer:json"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
