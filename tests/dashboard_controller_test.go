package tests

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"homeos/internal/controllers"
	"homeos/internal/models"
	"homeos/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDashboardController() (*controllers.DashboardController, *mocks.MockUserRepository, *mocks.MockMenuRepository, *mocks.MockWorkoutRepository, *mocks.MockMeasurementRepository, *mocks.MockChoreRepository) {
	userRepo := new(mocks.MockUserRepository)
	menuRepo := new(mocks.MockMenuRepository)
	workoutRepo := new(mocks.MockWorkoutRepository)
	measurementRepo := new(mocks.MockMeasurementRepository)
	choreRepo := new(mocks.MockChoreRepository)
	controller := controllers.NewDashboardController(userRepo, menuRepo, workoutRepo, measurementRepo, choreRepo)
	return controller, userRepo, menuRepo, workoutRepo, measurementRepo, choreRepo
}

func TestGetDashboardIncludesRecentSessions(t *testing.T) {
	controller, userRepo, menuRepo, workoutRepo, measurementRepo, choreRepo := setupDashboardController()

	user := &models.User{BasalMetabolism: 1600}
	user.ID = 1
	userRepo.On("GetUserByID", uint(1)).Return(user, nil)
	menuRepo.On("FindWeek", uint(1), mock.Anything).Return([]models.WeeklyMenu{}, nil)
	workoutRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return(nil, errors.New("record not found"))

	bench := models.Exercise{Name: "Bench press", MuscleGroup: "Chest", BurnRate: 0.5}
	recent := []models.WorkoutSession{
		{
			UserID: 1,
			Date:   time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC),
			Sets: []models.WorkoutSet{
				{Exercise: bench, Weight: 60, Reps: 10},
				{Exercise: bench, Weight: 60, Reps: 10},
			},
		},
	}
	workoutRepo.On("FindRecentByUserID", uint(1), 5).Return(recent, nil)

	measurementRepo.On("FindLatestByUserID", uint(1)).Return(nil, errors.New("record not found"))
	measurementRepo.On("FindFirstByUserID", uint(1)).Return(nil, errors.New("record not found"))
	choreRepo.On("FindAllByUserID", uint(1)).Return([]models.Chore{}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/dashboard", controller.GetDashboard)

	w := performJSON(router, http.MethodGet, "/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})

	sessions := data["recent_sessions"].([]interface{})
	assert.Len(t, sessions, 1)
	first := sessions[0].(map[string]interface{})
	assert.Equal(t, float64(10), first["total_calories"])

	calories := data["calories"].(map[string]interface{})
	assert.Equal(t, float64(1600), calories["basal"])
	assert.Equal(t, float64(0), calories["burned"])
	assert.Equal(t, float64(1600), calories["limit"])
	workoutRepo.AssertCalled(t, "FindRecentByUserID", uint(1), 5)
}

func TestGetDashboardDueChoresCutoff(t *testing.T) {
	controller, userRepo, menuRepo, workoutRepo, measurementRepo, choreRepo := setupDashboardController()

	user := &models.User{BasalMetabolism: 1450}
	user.ID = 1
	userRepo.On("GetUserByID", uint(1)).Return(user, nil)
	menuRepo.On("FindWeek", uint(1), mock.Anything).Return([]models.WeeklyMenu{}, nil)
	workoutRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return(nil, errors.New("record not found"))
	workoutRepo.On("FindRecentByUserID", uint(1), 5).Return([]models.WorkoutSession{}, nil)
	measurementRepo.On("FindLatestByUserID", uint(1)).Return(nil, errors.New("record not found"))
	measurementRepo.On("FindFirstByUserID", uint(1)).Return(nil, errors.New("record not found"))

	overdue := time.Now().AddDate(0, 0, -1)
	nextWeek := time.Now().AddDate(0, 0, 7)
	choreRepo.On("FindAllByUserID", uint(1)).Return([]models.Chore{
		{UserID: 1, Name: "Vacuum", Frequency: "weekly", NextDue: &overdue},
		{UserID: 1, Name: "Windows", Frequency: "monthly", NextDue: &nextWeek},
	}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/dashboard", controller.GetDashboard)

	w := performJSON(router, http.MethodGet, "/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	chores := data["due_chores"].([]interface{})
	assert.Len(t, chores, 1)
	assert.Equal(t, "Vacuum", chores[0].(map[string]interface{})["name"])
}
