package controllers

import (
	"net/http"
	"strconv"
	"time"

	"homeos/internal/models"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type ChoreController struct {
	choreRepo   repository.ChoreRepository
	laundryRepo repository.LaundryRepository
}

func NewChoreController(choreRepo repository.ChoreRepository, laundryRepo repository.LaundryRepository) *ChoreController {
	return &ChoreController{choreRepo: choreRepo, laundryRepo: laundryRepo}
}

type choreRequest struct {
	Name       string     `json:"name" binding:"required"`
	AssignedTo string     `json:"assigned_to"`
	Frequency  string     `json:"frequency" binding:"required,oneof=daily weekly biweekly monthly"`
	NextDue    *time.Time `json:"next_due"`
}

// GetChores godoc
// @Summary List chores ordered by due date
// @Tags chores
// @Produce json
// @Success 200 {object} map[string]interface{} "Chores retrieved successfully"
// @Router /chores [get]
func (cc *ChoreController) GetChores(c *gin.Context) {
	chores, err := cc.choreRepo.FindAllByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve chores",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Chores retrieved successfully",
		"data":    chores,
	})
}

// CreateChore godoc
// @Summary Create a chore
// @Tags chores
// @Accept json
// @Produce json
// @Param chore body choreRequest true "Chore data"
// @Success 201 {object} map[string]interface{} "Chore created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /chores [post]
func (cc *ChoreController) CreateChore(c *gin.Context) {
	var req choreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	chore := models.Chore{
		UserID:     currentUserID(c),
		Name:       req.Name,
		AssignedTo: req.AssignedTo,
		Frequency:  req.Frequency,
		NextDue:    req.NextDue,
	}
	if err := cc.choreRepo.Create(&chore); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create chore",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Chore created successfully",
		"data":    chore,
	})
}

// UpdateChore godoc
// @Summary Update a chore
// @Tags chores
// @Accept json
// @Produce json
// @Param id path int true "Chore ID"
// @Param chore body choreRequest true "Chore data"
// @Success 200 {object} map[string]interface{} "Chore updated successfully"
// @Router /chores/{id} [put]
func (cc *ChoreController) UpdateChore(c *gin.Context) {
	chore, ok := cc.ownedChore(c)
	if !ok {
		return
	}

	var req choreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	chore.Name = req.Name
	chore.AssignedTo = req.AssignedTo
	chore.Frequency = req.Frequency
	if req.NextDue != nil {
		chore.NextDue = req.NextDue
	}

	if err := cc.choreRepo.Update(chore); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update chore",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Chore updated successfully",
		"data":    chore,
	})
}

// MarkChoreDone godoc
// @Summary Mark a chore as done
// @Description Stamps the chore as done today and advances its due date by the chore's frequency.
// @Tags chores
// @Produce json
// @Param id path int true "Chore ID"
// @Success 200 {object} map[string]interface{} "Chore marked done"
// @Router /chores/{id}/done [post]
func (cc *ChoreController) MarkChoreDone(c *gin.Context) {
	chore, ok := cc.ownedChore(c)
	if !ok {
		return
	}

	now := time.Now()
	next := advanceByFrequency(now, chore.Frequency)
	chore.LastDone = &now
	chore.NextDue = &next

	if err := cc.choreRepo.Update(chore); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update chore",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Chore marked done",
		"data":    chore,
	})
}

// DeleteChore godoc
// @Summary Delete a chore
// @Tags chores
// @Produce json
// @Param id path int true "Chore ID"
// @Success 200 {object} map[string]interface{} "Chore deleted successfully"
// @Router /chores/{id} [delete]
func (cc *ChoreController) DeleteChore(c *gin.Context) {
	chore, ok := cc.ownedChore(c)
	if !ok {
		return
	}

	if err := cc.choreRepo.Delete(chore.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete chore",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Chore deleted successfully",
		"data":    nil,
	})
}

func advanceByFrequency(from time.Time, frequency string) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return from.AddDate(0, 0, 14)
	case models.FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 0, 7)
	}
}

func (cc *ChoreController) ownedChore(c *gin.Context) (*models.Chore, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid chore ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	chore, err := cc.choreRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Chore not found",
			"error":   "No chore exists with the provided ID",
		})
		return nil, false
	}
	if chore.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this chore",
			"error":   "Chore belongs to another user",
		})
		return nil, false
	}
	return chore, true
}

type laundryRequest struct {
	Kind         string `json:"kind" binding:"required"`
	PreferredDay string `json:"preferred_day"`
}

// GetLaundryJobs godoc
// @Summary List laundry jobs
// @Tags chores
// @Produce json
// @Success 200 {object} map[string]interface{} "Laundry jobs retrieved successfully"
// @Router /laundry [get]
func (cc *ChoreController) GetLaundryJobs(c *gin.Context) {
	jobs, err := cc.laundryRepo.FindAllByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve laundry jobs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Laundry jobs retrieved successfully",
		"data":    jobs,
	})
}

// CreateLaundryJob godoc
// @Summary Create a laundry job
// @Tags chores
// @Accept json
// @Produce json
// @Param job body laundryRequest true "Laundry job data"
// @Success 201 {object} map[string]interface{} "Laundry job created successfully"
// @Router /laundry [post]
func (cc *ChoreController) CreateLaundryJob(c *gin.Context) {
	var req laundryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	job := models.LaundryJob{
		UserID:       currentUserID(c),
		Kind:         req.Kind,
		PreferredDay: req.PreferredDay,
		Status:       models.LaundryPending,
	}
	if err := cc.laundryRepo.Create(&job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create laundry job",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Laundry job created successfully",
		"data":    job,
	})
}

// ToggleLaundryJob godoc
// @Summary Cycle a laundry job between pending and done
// @Tags chores
// @Produce json
// @Param id path int true "Laundry job ID"
// @Success 200 {object} map[string]interface{} "Laundry job updated successfully"
// @Router /laundry/{id}/toggle [post]
func (cc *ChoreController) ToggleLaundryJob(c *gin.Context) {
	job, ok := cc.ownedLaundryJob(c)
	if !ok {
		return
	}

	if job.Status == models.LaundryDone {
		job.Status = models.LaundryPending
	} else {
		job.Status = models.LaundryDone
	}

	if err := cc.laundryRepo.Update(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update laundry job",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Laundry job updated successfully",
		"data":    job,
	})
}

// DeleteLaundryJob godoc
// @Summary Delete a laundry job
// @Tags chores
// @Produce json
// @Param id path int true "Laundry job ID"
// @Success 200 {object} map[string]interface{} "Laundry job deleted successfully"
// @Router /laundry/{id} [delete]
func (cc *ChoreController) DeleteLaundryJob(c *gin.Context) {
	job, ok := cc.ownedLaundryJob(c)
	if !ok {
		return
	}

	if err := cc.laundryRepo.Delete(job.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete laundry job",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Laundry job deleted successfully",
		"data":    nil,
	})
}

func (cc *ChoreController) ownedLaundryJob(c *gin.Context) (*models.LaundryJob, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid laundry job ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	job, err := cc.laundryRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Laundry job not found",
			"error":   "No laundry job exists with the provided ID",
		})
		return nil, false
	}
	if job.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to access this laundry job",
			"error":   "Laundry job belongs to another user",
		})
		return nil, false
	}
	return job, true
}
