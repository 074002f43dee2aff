package models

import (
	"time"

	"gorm.io/gorm"
)

// WeeklyMenu is one planned day: (user, Monday of the ISO week, weekday name).
type WeeklyMenu struct {
	ID         uint            `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-" swaggerignore:"true"`
	UserID     uint            `gorm:"index:idx_menu_user_week,priority:1" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	WeekStart  time.Time       `gorm:"index:idx_menu_user_week,priority:2" json:"week_start"`
	Day        string          `gorm:"size:20" json:"day" example:"Monday"`
	Selections []MenuSelection `gorm:"foreignKey:MenuID" json:"selections"`
}

// MenuSelection is a tagged variant: it references either a recipe or a raw
// ingredient with a quantity in grams, never both.
type MenuSelection struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	MenuID       uint        `gorm:"index" json:"menu_id"`
	MealSlot     string      `gorm:"size:20" json:"meal_slot" example:"Lunch"`
	RecipeID     *uint       `json:"recipe_id,omitempty"`
	Recipe       *Recipe     `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	IngredientID *uint       `json:"ingredient_id,omitempty"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	QuantityG    float64     `json:"quantity_g,omitempty"`
}

// IsRecipe reports whether the selection points at a recipe rather than a
// raw ingredient.
func (s *MenuSelection) IsRecipe() bool {
	return s.RecipeID != nil
}
