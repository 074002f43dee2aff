package controllers

import (
	"net/http"
	"strconv"

	"homeos/internal/models"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	repo repository.ExerciseRepository
}

func NewExerciseController(repo repository.ExerciseRepository) *ExerciseController {
	return &ExerciseController{repo: repo}
}

type exerciseRequest struct {
	Name        string  `json:"name" binding:"required"`
	MuscleGroup string  `json:"muscle_group" binding:"required"`
	Description string  `json:"description"`
	VideoLink   string  `json:"video_link"`
	BurnRate    float64 `json:"burn_rate" binding:"min=0"`
}

// ListExercises godoc
// @Summary List the user's exercise catalog
// @Tags exercises
// @Produce json
// @Success 200 {object} map[string]interface{} "Exercises retrieved successfully"
// @Router /gym/exercises [get]
func (ec *ExerciseController) ListExercises(c *gin.Context) {
	exercises, err := ec.repo.FindAllByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve exercises",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercises retrieved successfully",
		"data":    exercises,
	})
}

// CreateExercise godoc
// @Summary Add an exercise to the catalog
// @Description Burn rate is kcal per rep, or kcal per minute for the Cardio muscle group
// @Tags exercises
// @Accept json
// @Produce json
// @Param exercise body exerciseRequest true "Exercise data"
// @Success 201 {object} map[string]interface{} "Exercise created successfully"
// @Router /gym/exercises [post]
func (ec *ExerciseController) CreateExercise(c *gin.Context) {
	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	exercise := models.Exercise{
		UserID:      currentUserID(c),
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Description: req.Description,
		VideoLink:   req.VideoLink,
		BurnRate:    req.BurnRate,
	}
	if err := ec.repo.Create(&exercise); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create exercise",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Exercise created successfully",
		"data":    exercise,
	})
}

// UpdateExercise godoc
// @Summary Update a catalog exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path int true "Exercise ID"
// @Param exercise body exerciseRequest true "Exercise data"
// @Success 200 {object} map[string]interface{} "Exercise updated successfully"
// @Router /gym/exercises/{id} [put]
func (ec *ExerciseController) UpdateExercise(c *gin.Context) {
	exercise, ok := ec.ownedExercise(c)
	if !ok {
		return
	}

	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	exercise.Name = req.Name
	exercise.MuscleGroup = req.MuscleGroup
	exercise.Description = req.Description
	exercise.VideoLink = req.VideoLink
	exercise.BurnRate = req.BurnRate

	if err := ec.repo.Update(exercise); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update exercise",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise updated successfully",
		"data":    exercise,
	})
}

// DeleteExercise godoc
// @Summary Delete a catalog exercise
// @Description Fails with a warning when the exercise is still referenced by routines or logged sets
// @Tags exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} map[string]interface{} "Exercise deleted successfully"
// @Failure 409 {object} map[string]interface{} "Exercise is in use"
// @Router /gym/exercises/{id} [delete]
func (ec *ExerciseController) DeleteExercise(c *gin.Context) {
	exercise, ok := ec.ownedExercise(c)
	if !ok {
		return
	}

	if err := ec.repo.Delete(exercise.ID); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Failed to delete exercise (it may be in use)",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise deleted successfully",
		"data":    nil,
	})
}

func (ec *ExerciseController) ownedExercise(c *gin.Context) (*models.Exercise, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid exercise ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	exercise, err := ec.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Exercise not found",
			"error":   "No exercise exists with the provided ID",
		})
		return nil, false
	}
	if exercise.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this exercise",
			"error":   "Exercise belongs to another user",
		})
		return nil, false
	}
	return exercise, true
}
