package controllers

import (
	"net/http"
	"strconv"

	"homeos/internal/models"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	repo repository.IngredientRepository
}

func NewIngredientController(repo repository.IngredientRepository) *IngredientController {
	return &IngredientController{repo: repo}
}

type ingredientRequest struct {
	Name     string  `json:"name" binding:"required"`
	Kcal100g float64 `json:"kcal_100g" binding:"min=0"`
	PriceKg  float64 `json:"price_kg" binding:"min=0"`
}

// ListIngredients godoc
// @Summary List the ingredient catalog
// @Tags ingredients
// @Produce json
// @Success 200 {object} map[string]interface{} "Ingredients retrieved successfully"
// @Router /ingredients [get]
func (ic *IngredientController) ListIngredients(c *gin.Context) {
	ingredients, err := ic.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve ingredients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredients retrieved successfully",
		"data":    ingredients,
	})
}

// CreateIngredient godoc
// @Summary Add a catalog ingredient
// @Description Name is unique across the catalog; duplicates are rejected with a warning
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body ingredientRequest true "Ingredient data"
// @Success 201 {object} map[string]interface{} "Ingredient created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Ingredient already exists"
// @Router /ingredients [post]
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ic.repo.FindByName(req.Name); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Ingredient already exists",
			"error":   "An ingredient with this name is already in the catalog",
		})
		return
	}

	ingredient := models.Ingredient{Name: req.Name, Kcal100g: req.Kcal100g, PriceKg: req.PriceKg}
	if err := ic.repo.Create(&ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Ingredient created successfully",
		"data":    ingredient,
	})
}

// UpdateIngredient godoc
// @Summary Update a catalog ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body ingredientRequest true "Ingredient data"
// @Success 200 {object} map[string]interface{} "Ingredient updated successfully"
// @Router /ingredients/{id} [put]
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	ingredient, err := ic.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	ingredient.Name = req.Name
	ingredient.Kcal100g = req.Kcal100g
	ingredient.PriceKg = req.PriceKg
	if err := ic.repo.Update(ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient updated successfully",
		"data":    ingredient,
	})
}

// DeleteIngredient godoc
// @Summary Remove a catalog ingredient
// @Description Also removes its recipe links; recipe totals skip the vanished associations
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Ingredient deleted successfully"
// @Router /ingredients/{id} [delete]
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := ic.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	if err := ic.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Failed to delete ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient deleted successfully",
		"data":    nil,
	})
}
