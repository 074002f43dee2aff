package controllers

import (
	"net/http"
	"strconv"

	"homeos/internal/models"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type ShoppingController struct {
	repo repository.ShoppingRepository
}

func NewShoppingController(repo repository.ShoppingRepository) *ShoppingController {
	return &ShoppingController{repo: repo}
}

type shoppingItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ListItems godoc
// @Summary List shopping items, pending first
// @Tags shopping
// @Produce json
// @Success 200 {object} map[string]interface{} "Items retrieved successfully"
// @Router /shopping [get]
func (sc *ShoppingController) ListItems(c *gin.Context) {
	items, err := sc.repo.FindAllByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve shopping items",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Items retrieved successfully",
		"data":    items,
	})
}

// AddItem godoc
// @Summary Add a manual shopping item
// @Description Manual items live alongside the auto-generated ones and are never touched by menu recalculation
// @Tags shopping
// @Accept json
// @Produce json
// @Param item body shoppingItemRequest true "Item data"
// @Success 201 {object} map[string]interface{} "Item created successfully"
// @Router /shopping [post]
func (sc *ShoppingController) AddItem(c *gin.Context) {
	var req shoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	item := models.ShoppingItem{
		UserID:   currentUserID(c),
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		IsAuto:   false,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Unit == "" {
		item.Unit = "ud"
	}

	if err := sc.repo.Create(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Item created successfully",
		"data":    item,
	})
}

// ToggleItem godoc
// @Summary Toggle an item's completion flag
// @Tags shopping
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]interface{} "Item updated successfully"
// @Router /shopping/{id}/toggle [post]
func (sc *ShoppingController) ToggleItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid item ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	item, err := sc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Item not found",
			"error":   "No item exists with the provided ID",
		})
		return
	}
	if item.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to modify this item",
			"error":   "Item belongs to another user",
		})
		return
	}

	item.Completed = !item.Completed
	if err := sc.repo.Update(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item updated successfully",
		"data":    item,
	})
}

// ClearCompleted godoc
// @Summary Delete all completed items
// @Tags shopping
// @Produce json
// @Success 200 {object} map[string]interface{} "Completed items cleared"
// @Router /shopping/completed [delete]
func (sc *ShoppingController) ClearCompleted(c *gin.Context) {
	if err := sc.repo.DeleteCompleted(currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to clear completed items",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Completed items cleared",
		"data":    nil,
	})
}
