package controllers

import (
	"log"
	"net/http"
	"strconv"

	"homeos/internal/models"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type RoutineController struct {
	repo repository.RoutineRepository
}

func NewRoutineController(repo repository.RoutineRepository) *RoutineController {
	return &RoutineController{repo: repo}
}

type routineExerciseEntry struct {
	ExerciseID     uint    `json:"exercise_id"`
	Series         int     `json:"series"`
	RestSeconds    int     `json:"rest_seconds"`
	TargetDistance float64 `json:"target_distance"`
	TargetTime     int     `json:"target_time"`
}

type routineRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Exercises   []routineExerciseEntry `json:"exercises"`
}

func buildRoutineExercises(entries []routineExerciseEntry) ([]models.RoutineExercise, int) {
	var out []models.RoutineExercise
	skipped := 0
	for i, e := range entries {
		if e.ExerciseID == 0 {
			skipped++
			continue
		}
		series := e.Series
		if series < 1 {
			series = 3
		}
		rest := e.RestSeconds
		if rest <= 0 {
			rest = 60
		}
		out = append(out, models.RoutineExercise{
			ExerciseID:     e.ExerciseID,
			Position:       i,
			Series:         series,
			RestSeconds:    rest,
			TargetDistance: e.TargetDistance,
			TargetTime:     e.TargetTime,
		})
	}
	return out, skipped
}

// ListRoutines godoc
// @Summary List the user's routines
// @Tags routines
// @Produce json
// @Success 200 {object} map[string]interface{} "Routines retrieved successfully"
// @Router /gym/routines [get]
func (rc *RoutineController) ListRoutines(c *gin.Context) {
	routines, err := rc.repo.FindAllByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve routines",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Routines retrieved successfully",
		"data":    routines,
	})
}

// GetRoutine godoc
// @Summary Get one routine with its ordered exercises
// @Tags routines
// @Produce json
// @Param id path int true "Routine ID"
// @Success 200 {object} map[string]interface{} "Routine retrieved successfully"
// @Router /gym/routines/{id} [get]
func (rc *RoutineController) GetRoutine(c *gin.Context) {
	routine, ok := rc.ownedRoutine(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Routine retrieved successfully",
		"data":    routine,
	})
}

// CreateRoutine godoc
// @Summary Create a routine
// @Tags routines
// @Accept json
// @Produce json
// @Param routine body routineRequest true "Routine data"
// @Success 201 {object} map[string]interface{} "Routine created successfully"
// @Router /gym/routines [post]
func (rc *RoutineController) CreateRoutine(c *gin.Context) {
	var req routineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	exercises, skipped := buildRoutineExercises(req.Exercises)
	if skipped > 0 {
		log.Printf("create routine %q: skipped %d malformed exercise entries", req.Name, skipped)
	}

	routine := models.Routine{
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := rc.repo.CreateWithExercises(&routine, exercises); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create routine",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Routine created successfully",
		"data":    routine,
	})
}

// UpdateRoutine godoc
// @Summary Update a routine, replacing its exercise list
// @Tags routines
// @Accept json
// @Produce json
// @Param id path int true "Routine ID"
// @Param routine body routineRequest true "Routine data"
// @Success 200 {object} map[string]interface{} "Routine updated successfully"
// @Router /gym/routines/{id} [put]
func (rc *RoutineController) UpdateRoutine(c *gin.Context) {
	routine, ok := rc.ownedRoutine(c)
	if !ok {
		return
	}

	var req routineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	exercises, skipped := buildRoutineExercises(req.Exercises)
	if skipped > 0 {
		log.Printf("update routine %d: skipped %d malformed exercise entries", routine.ID, skipped)
	}

	routine.Name = req.Name
	routine.Description = req.Description
	routine.Exercises = nil
	if err := rc.repo.UpdateWithExercises(routine, exercises); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update routine",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Routine updated successfully",
		"data":    routine,
	})
}

// DeleteRoutine godoc
// @Summary Delete a routine
// @Tags routines
// @Produce json
// @Param id path int true "Routine ID"
// @Success 200 {object} map[string]interface{} "Routine deleted successfully"
// @Router /gym/routines/{id} [delete]
func (rc *RoutineController) DeleteRoutine(c *gin.Context) {
	routine, ok := rc.ownedRoutine(c)
	if !ok {
		return
	}

	if err := rc.repo.Delete(routine.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete routine",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Routine deleted successfully",
		"data":    nil,
	})
}

func (rc *RoutineController) ownedRoutine(c *gin.Context) (*models.Routine, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid routine ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	routine, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Routine not found",
			"error":   "No routine exists with the provided ID",
		})
		return nil, false
	}
	if routine.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this routine",
			"error":   "Routine belongs to another user",
		})
		return nil, false
	}
	return routine, true
}
