package controllers

import (
	"net/http"
	"strconv"
	"time"

	"homeos/internal/fitness"
	"homeos/internal/repository"

	"github.com/gin-gonic/gin"
)

type MeasurementController struct {
	measurementRepo repository.MeasurementRepository
}

func NewMeasurementController(measurementRepo repository.MeasurementRepository) *MeasurementController {
	return &MeasurementController{measurementRepo: measurementRepo}
}

// metricSeries is a chart-friendly column of one metric; missing values are
// emitted as null so chart libraries can gap the line.
type metricSeries struct {
	Label  string     `json:"label"`
	Unit   string     `json:"unit"`
	Values []*float64 `json:"values"`
}

// GetMeasurements godoc
// @Summary List body measurements with chart series
// @Description Returns snapshots oldest first plus per-metric series aligned to the date labels, and the first-vs-last deltas.
// @Tags measurements
// @Produce json
// @Success 200 {object} map[string]interface{} "Measurements retrieved successfully"
// @Router /gym/measurements [get]
func (mc *MeasurementController) GetMeasurements(c *gin.Context) {
	userID := currentUserID(c)
	measurements, err := mc.measurementRepo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve measurements",
			"error":   err.Error(),
		})
		return
	}

	labels := make([]string, 0, len(measurements))
	series := []metricSeries{
		{Label: "Weight", Unit: "kg"},
		{Label: "Chest", Unit: "cm"},
		{Label: "Biceps", Unit: "cm"},
		{Label: "Hips", Unit: "cm"},
		{Label: "Thigh", Unit: "cm"},
		{Label: "Calf", Unit: "cm"},
	}
	for _, m := range measurements {
		labels = append(labels, m.Date.Format("2006-01-02"))
		series[0].Values = append(series[0].Values, m.Weight)
		series[1].Values = append(series[1].Values, m.Chest)
		series[2].Values = append(series[2].Values, m.Biceps)
		series[3].Values = append(series[3].Values, m.Hips)
		series[4].Values = append(series[4].Values, m.Thigh)
		series[5].Values = append(series[5].Values, m.Calf)
	}

	var deltas []fitness.ProgressDelta
	if len(measurements) >= 2 {
		deltas = fitness.MeasurementDeltas(&measurements[0], &measurements[len(measurements)-1])
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measurements retrieved successfully",
		"data": gin.H{
			"measurements": measurements,
			"labels":       labels,
			"series":       series,
			"deltas":       deltas,
		},
	})
}

type measurementRequest struct {
	Date *time.Time `json:"date"`
	fitness.MeasurementInput
}

// CreateMeasurement godoc
// @Summary Record a body measurement
// @Description Blank metrics inherit the previous snapshot's value. A submission with no new value at all is rejected.
// @Tags measurements
// @Accept json
// @Produce json
// @Param measurement body measurementRequest true "Measurement data"
// @Success 201 {object} map[string]interface{} "Measurement recorded successfully"
// @Failure 400 {object} map[string]interface{} "No new values submitted"
// @Router /gym/measurements [post]
func (mc *MeasurementController) CreateMeasurement(c *gin.Context) {
	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID := currentUserID(c)
	prev, err := mc.measurementRepo.FindLatestByUserID(userID)
	if err != nil {
		prev = nil
	}

	merged, hasNew := fitness.MergeMeasurement(prev, req.MeasurementInput)
	if !hasNew {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Nothing to record",
			"error":   "Submit at least one new measurement value",
		})
		return
	}

	merged.UserID = userID
	merged.Date = time.Now()
	if req.Date != nil {
		merged.Date = *req.Date
	}

	if err := mc.measurementRepo.Create(&merged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record measurement",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Measurement recorded successfully",
		"data":    merged,
	})
}

// UpdateMeasurement godoc
// @Summary Update a measurement snapshot
// @Description Replaces the snapshot's metrics with the submitted values; blanks clear the metric rather than inheriting.
// @Tags measurements
// @Accept json
// @Produce json
// @Param id path int true "Measurement ID"
// @Param measurement body measurementRequest true "Measurement data"
// @Success 200 {object} map[string]interface{} "Measurement updated successfully"
// @Router /gym/measurements/{id} [put]
func (mc *MeasurementController) UpdateMeasurement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measurement ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	measurement, err := mc.measurementRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measurement not found",
			"error":   "No measurement exists with the provided ID",
		})
		return
	}
	if measurement.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to modify this measurement",
			"error":   "Measurement belongs to another user",
		})
		return
	}

	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Date != nil {
		measurement.Date = *req.Date
	}
	measurement.Weight = req.Weight
	measurement.Chest = req.Chest
	measurement.Biceps = req.Biceps
	measurement.Hips = req.Hips
	measurement.Thigh = req.Thigh
	measurement.Calf = req.Calf

	if err := mc.measurementRepo.Update(measurement); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update measurement",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measurement updated successfully",
		"data":    measurement,
	})
}

// DeleteMeasurement godoc
// @Summary Delete a measurement snapshot
// @Tags measurements
// @Produce json
// @Param id path int true "Measurement ID"
// @Success 200 {object} map[string]interface{} "Measurement deleted successfully"
// @Router /gym/measurements/{id} [delete]
func (mc *MeasurementController) DeleteMeasurement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measurement ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	measurement, err := mc.measurementRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measurement not found",
			"error":   "No measurement exists with the provided ID",
		})
		return
	}
	if measurement.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to delete this measurement",
			"error":   "Measurement belongs to another user",
		})
		return
	}

	if err := mc.measurementRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete measurement",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measurement deleted successfully",
		"data":    nil,
	})
}
