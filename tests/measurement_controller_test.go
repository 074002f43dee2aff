package tests

import (
	"net/http"
	"testing"
	"time"

	"homeos/internal/controllers"
	"homeos/internal/models"
	"homeos/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupMeasurementController() (*controllers.MeasurementController, *mocks.MockMeasurementRepository) {
	mockRepo := new(mocks.MockMeasurementRepository)
	controller := controllers.NewMeasurementController(mockRepo)
	return controller, mockRepo
}

func fptr(v float64) *float64 { return &v }

func TestCreateMeasurementInheritsBlanks(t *testing.T) {
	controller, mockRepo := setupMeasurementController()

	prev := &models.BodyMeasurement{
		ID:     1,
		UserID: 1,
		Date:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Weight: fptr(70),
		Chest:  fptr(100),
	}
	mockRepo.On("FindLatestByUserID", uint(1)).Return(prev, nil)
	mockRepo.On("Create", mock.MatchedBy(func(m *models.BodyMeasurement) bool {
		return m.UserID == 1 &&
			m.Weight != nil && *m.Weight == 69.5 &&
			m.Chest != nil && *m.Chest == 100
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/gym/measurements", controller.CreateMeasurement)

	w := performJSON(router, "POST", "/gym/measurements", map[string]interface{}{"weight": 69.5})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateMeasurementRejectsNothingNew(t *testing.T) {
	controller, mockRepo := setupMeasurementController()

	prev := &models.BodyMeasurement{ID: 1, UserID: 1, Weight: fptr(70)}
	mockRepo.On("FindLatestByUserID", uint(1)).Return(prev, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/gym/measurements", controller.CreateMeasurement)

	w := performJSON(router, "POST", "/gym/measurements", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Contains(t, response["message"], "Nothing to record")

	// Create must never have been called.
	mockRepo.AssertExpectations(t)
}

func TestCreateMeasurementFirstEver(t *testing.T) {
	controller, mockRepo := setupMeasurementController()

	mockRepo.On("FindLatestByUserID", uint(1)).Return(nil, assert.AnError)
	mockRepo.On("Create", mock.MatchedBy(func(m *models.BodyMeasurement) bool {
		return m.Weight != nil && *m.Weight == 72 && m.Chest == nil
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/gym/measurements", controller.CreateMeasurement)

	w := performJSON(router, "POST", "/gym/measurements", map[string]interface{}{"weight": 72})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetMeasurementsBuildsSeries(t *testing.T) {
	controller, mockRepo := setupMeasurementController()

	measurements := []models.BodyMeasurement{
		{ID: 1, UserID: 1, Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Weight: fptr(72)},
		{ID: 2, UserID: 1, Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), Weight: fptr(70.5)},
	}
	mockRepo.On("FindAllByUserID", uint(1)).Return(measurements, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/gym/measurements", controller.GetMeasurements)

	w := performJSON(router, "GET", "/gym/measurements", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})

	labels := data["labels"].([]interface{})
	assert.Equal(t, []interface{}{"2026-08-01", "2026-08-15"}, labels)

	deltas := data["deltas"].([]interface{})
	assert.Len(t, deltas, 1)
	weightDelta := deltas[0].(map[string]interface{})
	assert.Equal(t, "Weight", weightDelta["label"])
	assert.Equal(t, -1.5, weightDelta["diff"])

	mockRepo.AssertExpectations(t)
}

func TestDeleteMeasurementOwnership(t *testing.T) {
	controller, mockRepo := setupMeasurementController()
	mockRepo.On("FindByID", uint(4)).Return(&models.BodyMeasurement{ID: 4, UserID: 2}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/gym/measurements/:id", controller.DeleteMeasurement)

	w := performJSON(router, "DELETE", "/gym/measurements/4", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
