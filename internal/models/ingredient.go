package models

import (
	"time"

	"gorm.io/gorm"
)

// Ingredient is catalog-level reference data shared by every user.
type Ingredient struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `gorm:"uniqueIndex;size:100" json:"name" example:"Rice"`
	Kcal100g  float64        `json:"kcal_100g" example:"130"`
	PriceKg   float64        `json:"price_kg" example:"2"`
}
