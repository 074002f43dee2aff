package repository

import (
	"homeos/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	CreateWithIngredients(recipe *models.Recipe, assocs []models.RecipeIngredient) error
	FindAllByUserID(userID uint) ([]models.Recipe, error)
	FindByID(id uint) (*models.Recipe, error)
	UpdateWithIngredients(recipe *models.Recipe, assocs []models.RecipeIngredient) error
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

// CreateWithIngredients persists the recipe and its association rows as one
// atomic unit; a failure on any row rolls the whole recipe back.
func (r *recipeRepository) CreateWithIngredients(recipe *models.Recipe, assocs []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		for i := range assocs {
			assocs[i].RecipeID = recipe.ID
			if err := tx.Create(&assocs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) FindAllByUserID(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Where("user_id = ?", userID).
		Preload("Ingredients.Ingredient").
		Order("id DESC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Ingredients.Ingredient").First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateWithIngredients replaces the association set clear-then-insert
// inside one transaction. Catalog ingredients are never touched, only the
// links.
func (r *recipeRepository) UpdateWithIngredients(recipe *models.Recipe, assocs []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range assocs {
			assocs[i].ID = 0
			assocs[i].RecipeID = recipe.ID
			if err := tx.Create(&assocs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}
