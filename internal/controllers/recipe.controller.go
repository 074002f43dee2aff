package controllers

import (
	"log"
	"net/http"
	"strconv"

	"homeos/internal/models"
	"homeos/internal/planner"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	repo repository.RecipeRepository
}

func NewRecipeController(repo repository.RecipeRepository) *RecipeController {
	return &RecipeController{repo: repo}
}

type recipeIngredientEntry struct {
	IngredientID uint    `json:"ingredient_id"`
	QuantityG    float64 `json:"quantity_g"`
}

type recipeRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	Steps       string                  `json:"steps"`
	Ingredients []recipeIngredientEntry `json:"ingredients"`
}

// buildAssociations validates the structured ingredient list. Malformed
// entries are skipped, not fatal: the rest of the submission still commits.
func buildAssociations(entries []recipeIngredientEntry) ([]models.RecipeIngredient, int) {
	var assocs []models.RecipeIngredient
	skipped := 0
	for _, e := range entries {
		if e.IngredientID == 0 || e.QuantityG < 0 {
			skipped++
			continue
		}
		assocs = append(assocs, models.RecipeIngredient{
			IngredientID: e.IngredientID,
			QuantityG:    e.QuantityG,
		})
	}
	return assocs, skipped
}

type recipeView struct {
	Recipe models.Recipe  `json:"recipe"`
	Totals planner.Totals `json:"totals"`
}

// ListRecipes godoc
// @Summary List the user's recipes with derived totals
// @Tags recipes
// @Produce json
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Router /recipes [get]
func (rc *RecipeController) ListRecipes(c *gin.Context) {
	recipes, err := rc.repo.FindAllByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recipes",
			"error":   err.Error(),
		})
		return
	}

	views := make([]recipeView, 0, len(recipes))
	for _, r := range recipes {
		totals, skipped := planner.ComputeRecipeTotals(r.Ingredients)
		if skipped > 0 {
			log.Printf("recipe %d: %d ingredient association(s) missing, excluded from totals", r.ID, skipped)
		}
		views = append(views, recipeView{Recipe: r, Totals: totals})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    views,
	})
}

// GetRecipe godoc
// @Summary Get one recipe with derived totals
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Recipe belongs to another user"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (rc *RecipeController) GetRecipe(c *gin.Context) {
	recipe, ok := rc.ownedRecipe(c)
	if !ok {
		return
	}

	totals, skipped := planner.ComputeRecipeTotals(recipe.Ingredients)
	if skipped > 0 {
		log.Printf("recipe %d: %d ingredient association(s) missing, excluded from totals", recipe.ID, skipped)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    recipeView{Recipe: *recipe, Totals: totals},
	})
}

// CreateRecipe godoc
// @Summary Create a recipe with its ingredient associations
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body recipeRequest true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /recipes [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	assocs, skipped := buildAssociations(req.Ingredients)
	if skipped > 0 {
		log.Printf("create recipe %q: skipped %d malformed ingredient entries", req.Title, skipped)
	}

	recipe := models.Recipe{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
	}
	if err := rc.repo.CreateWithIngredients(&recipe, assocs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// UpdateRecipe godoc
// @Summary Update a recipe, replacing its ingredient associations
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body recipeRequest true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Router /recipes/{id} [put]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	recipe, ok := rc.ownedRecipe(c)
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	assocs, skipped := buildAssociations(req.Ingredients)
	if skipped > 0 {
		log.Printf("update recipe %d: skipped %d malformed ingredient entries", recipe.ID, skipped)
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Steps = req.Steps
	recipe.Ingredients = nil
	if err := rc.repo.UpdateWithIngredients(recipe, assocs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Router /recipes/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	recipe, ok := rc.ownedRecipe(c)
	if !ok {
		return
	}

	if err := rc.repo.Delete(recipe.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}

// ownedRecipe loads the recipe from the path id and enforces ownership.
// On failure it has already written the response.
func (rc *RecipeController) ownedRecipe(c *gin.Context) (*models.Recipe, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	recipe, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return nil, false
	}

	if recipe.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this recipe",
			"error":   "Recipe belongs to another user",
		})
		return nil, false
	}
	return recipe, true
}
