package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"homeos/internal/fitness"
	"homeos/internal/models"
	"homeos/internal/repository"
	"homeos/internal/utils"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workoutRepo  repository.WorkoutRepository
	routineRepo  repository.RoutineRepository
	exerciseRepo repository.ExerciseRepository
}

func NewWorkoutController(
	workoutRepo repository.WorkoutRepository,
	routineRepo repository.RoutineRepository,
	exerciseRepo repository.ExerciseRepository,
) *WorkoutController {
	return &WorkoutController{
		workoutRepo:  workoutRepo,
		routineRepo:  routineRepo,
		exerciseRepo: exerciseRepo,
	}
}

type logWorkoutRequest struct {
	Date          *time.Time             `json:"date"`
	Note          string                 `json:"note"`
	PhotoFilename string                 `json:"photo_filename"`
	Entries       []fitness.WorkoutEntry `json:"entries" binding:"required"`
}

type sessionView struct {
	Session       models.WorkoutSession `json:"session"`
	TotalCalories int                   `json:"total_calories"`
}

// LogSession godoc
// @Summary Log a workout session
// @Description Each entry expands into one set per series repetition, submission order preserved. Entries with neither a weight/reps pair nor cardio data are dropped silently.
// @Tags workouts
// @Accept json
// @Produce json
// @Param workout body logWorkoutRequest true "Workout data"
// @Success 201 {object} map[string]interface{} "Workout logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /gym/workouts [post]
func (wc *WorkoutController) LogSession(c *gin.Context) {
	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	session := models.WorkoutSession{
		UserID:        currentUserID(c),
		Date:          date,
		Note:          req.Note,
		PhotoFilename: req.PhotoFilename,
	}
	sets := fitness.ExpandEntries(req.Entries)

	if err := wc.workoutRepo.CreateSession(&session, sets); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout logged successfully",
		"data":    gin.H{"session": session, "sets_created": len(sets)},
	})
}

// GetHistory godoc
// @Summary List workout sessions, most recent first
// @Tags workouts
// @Produce json
// @Success 200 {object} map[string]interface{} "Sessions retrieved successfully"
// @Router /gym/workouts [get]
func (wc *WorkoutController) GetHistory(c *gin.Context) {
	sessions, err := wc.workoutRepo.FindAllByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve sessions",
			"error":   err.Error(),
		})
		return
	}

	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, sessionView{Session: s, TotalCalories: fitness.SessionCalories(s.Sets)})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Sessions retrieved successfully",
		"data":    views,
	})
}

// GetSession godoc
// @Summary Get one workout session with its sets and calorie estimate
// @Tags workouts
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]interface{} "Session retrieved successfully"
// @Router /gym/workouts/{id} [get]
func (wc *WorkoutController) GetSession(c *gin.Context) {
	session, ok := wc.ownedSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session retrieved successfully",
		"data":    sessionView{Session: *session, TotalCalories: fitness.SessionCalories(session.Sets)},
	})
}

type updateSessionRequest struct {
	Note          string     `json:"note"`
	Date          *time.Time `json:"date"`
	PhotoFilename *string    `json:"photo_filename"`
}

// UpdateSession godoc
// @Summary Update a session's note, date or photo reference
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param session body updateSessionRequest true "Session data"
// @Success 200 {object} map[string]interface{} "Session updated successfully"
// @Router /gym/workouts/{id} [put]
func (wc *WorkoutController) UpdateSession(c *gin.Context) {
	session, ok := wc.ownedSession(c)
	if !ok {
		return
	}

	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	session.Note = req.Note
	if req.Date != nil {
		session.Date = *req.Date
	}
	if req.PhotoFilename != nil {
		session.PhotoFilename = *req.PhotoFilename
	}

	if err := wc.workoutRepo.UpdateSession(session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update session",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session updated successfully",
		"data":    session,
	})
}

// UploadPhoto godoc
// @Summary Attach a progress photo to a session
// @Description Stores the file under a generated name; the content is never interpreted, only the filename is persisted.
// @Tags workouts
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Session ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} map[string]interface{} "Photo uploaded successfully"
// @Router /gym/workouts/{id}/photo [post]
func (wc *WorkoutController) UploadPhoto(c *gin.Context) {
	session, ok := wc.ownedSession(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "A photo file is required",
		})
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	filename := utils.UploadFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store photo",
			"error":   err.Error(),
		})
		return
	}

	session.PhotoFilename = filename
	if err := wc.workoutRepo.UpdateSession(session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update session",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Photo uploaded successfully",
		"data":    gin.H{"photo_filename": filename},
	})
}

// DeleteSession godoc
// @Summary Delete a workout session and its sets
// @Tags workouts
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]interface{} "Session deleted successfully"
// @Router /gym/workouts/{id} [delete]
func (wc *WorkoutController) DeleteSession(c *gin.Context) {
	session, ok := wc.ownedSession(c)
	if !ok {
		return
	}

	if err := wc.workoutRepo.Delete(session.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete session",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session deleted successfully",
		"data":    nil,
	})
}

// GetPrefill godoc
// @Summary Pre-fill a workout log from a routine
// @Description For each routine exercise the most recent logged set wins; cardio distance/time fall back to the routine's targets when history is absent or zero.
// @Tags workouts
// @Produce json
// @Param routine_id path int true "Routine ID"
// @Success 200 {object} map[string]interface{} "Prefill built successfully"
// @Router /gym/workouts/prefill/{routine_id} [get]
func (wc *WorkoutController) GetPrefill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("routine_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid routine ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	userID := currentUserID(c)
	routine, err := wc.routineRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Routine not found",
			"error":   "No routine exists with the provided ID",
		})
		return
	}
	if routine.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this routine",
			"error":   "Routine belongs to another user",
		})
		return
	}

	prefill := make([]fitness.PrefillEntry, 0, len(routine.Exercises))
	for _, re := range routine.Exercises {
		last, err := wc.workoutRepo.FindLastSetByExercise(userID, re.ExerciseID)
		if err != nil {
			last = nil
		}
		prefill = append(prefill, fitness.BuildPrefill(re, last))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prefill built successfully",
		"data":    prefill,
	})
}

// GetProgress godoc
// @Summary Progress chart for one exercise
// @Description One point per calendar date: the maximum weight lifted that day, dates ascending.
// @Tags workouts
// @Produce json
// @Param exercise_id path int true "Exercise ID"
// @Success 200 {object} map[string]interface{} "Progress retrieved successfully"
// @Router /gym/progress/{exercise_id} [get]
func (wc *WorkoutController) GetProgress(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("exercise_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid exercise ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	userID := currentUserID(c)
	exercise, err := wc.exerciseRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Exercise not found",
			"error":   "No exercise exists with the provided ID",
		})
		return
	}
	if exercise.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this exercise",
			"error":   "Exercise belongs to another user",
		})
		return
	}

	samples, err := wc.workoutRepo.FindProgressSamples(userID, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve progress",
			"error":   err.Error(),
		})
		return
	}

	points := make([]fitness.SetSample, 0, len(samples))
	for _, s := range samples {
		points = append(points, fitness.SetSample{Date: s.Date, Weight: s.Weight})
	}
	labels, values := fitness.ProgressSeries(points)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress retrieved successfully",
		"data": gin.H{
			"exercise": exercise,
			"labels":   labels,
			"values":   values,
		},
	})
}

func (wc *WorkoutController) ownedSession(c *gin.Context) (*models.WorkoutSession, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid session ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	session, err := wc.workoutRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Session not found",
			"error":   "No session exists with the provided ID",
		})
		return nil, false
	}
	if session.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this session",
			"error":   "Session belongs to another user",
		})
		return nil, false
	}
	return session, true
}
