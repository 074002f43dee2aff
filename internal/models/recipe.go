package models

import (
	"time"

	"gorm.io/gorm"
)

type Recipe struct {
	ID          uint               `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint               `json:"user_id" example:"1"`
	User        User               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string             `gorm:"size:100" json:"title" example:"Chicken with rice"`
	Description string             `json:"description"`
	Steps       string             `json:"steps"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

// RecipeIngredient links a recipe to a catalog ingredient by weight.
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RecipeID     uint       `gorm:"index" json:"recipe_id"`
	IngredientID uint       `json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
	QuantityG    float64    `json:"quantity_g" example:"200"`
}
