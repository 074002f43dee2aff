package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeos/internal/controllers"
	"homeos/internal/models"
	"homeos/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func setupMenuController() (*controllers.MenuController, *mocks.MockMenuRepository, *mocks.MockShoppingRepository) {
	menuRepo := new(mocks.MockMenuRepository)
	shoppingRepo := new(mocks.MockShoppingRepository)
	controller := controllers.NewMenuController(menuRepo, shoppingRepo)
	return controller, menuRepo, shoppingRepo
}

func TestGetWeekReturnsSevenCells(t *testing.T) {
	controller, menuRepo, _ := setupMenuController()
	menuRepo.On("FindWeek", uint(1), mock.AnythingOfType("time.Time")).Return([]models.WeeklyMenu{}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/menu", controller.GetWeek)

	w := performJSON(router, "GET", "/menu?week=2026-09-03", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})

	// Any date inside the week addresses its Monday.
	assert.Equal(t, "2026-08-31", data["week_start"])
	assert.Equal(t, "2026-08-24", data["prev_week"])
	assert.Equal(t, "2026-09-07", data["next_week"])
	assert.Len(t, data["days"], 7)

	menuRepo.AssertExpectations(t)
}

func TestGetWeekInvalidIdentifier(t *testing.T) {
	controller, _, _ := setupMenuController()

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/menu", controller.GetWeek)

	w := performJSON(router, "GET", "/menu?week=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.Contains(t, response["message"], "Invalid week identifier")
}

func TestSaveWeekSkipsMalformedSelections(t *testing.T) {
	controller, menuRepo, shoppingRepo := setupMenuController()

	// Only the valid recipe selection survives validation.
	menuRepo.On("ReplaceDaySelections", uint(1), mock.AnythingOfType("time.Time"), "Monday",
		mock.MatchedBy(func(sels []models.MenuSelection) bool {
			return len(sels) == 1 && sels[0].RecipeID != nil && *sels[0].RecipeID == 7
		})).Return(nil)
	menuRepo.On("FindWeek", uint(1), mock.AnythingOfType("time.Time")).Return([]models.WeeklyMenu{}, nil)
	shoppingRepo.On("ReplaceAutoItems", uint(1), mock.AnythingOfType("[]models.ShoppingItem")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/menu", controller.SaveWeek)

	body := map[string]interface{}{
		"week_start": "2026-08-31",
		"days": []map[string]interface{}{
			{
				"day": "Monday",
				"selections": []map[string]interface{}{
					{"meal_slot": "Lunch", "recipe_id": 7},
					{"meal_slot": "Lunch", "recipe_id": 7, "ingredient_id": 1}, // both variants set
					{"meal_slot": "Lunch"},                                    // neither variant set
					{"meal_slot": "Brunch", "recipe_id": 7},                   // unknown meal slot
				},
			},
		},
	}

	w := performJSON(router, "POST", "/menu", body)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["skipped"])

	menuRepo.AssertExpectations(t)
	shoppingRepo.AssertExpectations(t)
}

func TestSaveWeekUnknownWeekdaySkipsWholeDay(t *testing.T) {
	controller, menuRepo, shoppingRepo := setupMenuController()

	menuRepo.On("FindWeek", uint(1), mock.AnythingOfType("time.Time")).Return([]models.WeeklyMenu{}, nil)
	shoppingRepo.On("ReplaceAutoItems", uint(1), mock.AnythingOfType("[]models.ShoppingItem")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/menu", controller.SaveWeek)

	body := map[string]interface{}{
		"week_start": "2026-08-31",
		"days": []map[string]interface{}{
			{
				"day": "Caturday",
				"selections": []map[string]interface{}{
					{"meal_slot": "Lunch", "recipe_id": 7},
				},
			},
		},
	}

	w := performJSON(router, "POST", "/menu", body)

	assert.Equal(t, http.StatusOK, w.Code)
	// No ReplaceDaySelections call was expected or made.
	menuRepo.AssertExpectations(t)
}

func TestSaveWeekRepositoryError(t *testing.T) {
	controller, menuRepo, _ := setupMenuController()

	menuRepo.On("ReplaceDaySelections", uint(1), mock.AnythingOfType("time.Time"), "Monday",
		mock.AnythingOfType("[]models.MenuSelection")).Return(errors.New("database error"))

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/menu", controller.SaveWeek)

	body := map[string]interface{}{
		"week_start": "2026-08-31",
		"days": []map[string]interface{}{
			{
				"day": "Monday",
				"selections": []map[string]interface{}{
					{"meal_slot": "Lunch", "recipe_id": 7},
				},
			},
		},
	}

	w := performJSON(router, "POST", "/menu", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeResponse(t, w)
	assert.Contains(t, response["message"], "Failed to save menu")
}

func TestSaveWeekInvalidJSON(t *testing.T) {
	controller, _, _ := setupMenuController()

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/menu", controller.SaveWeek)

	req := httptest.NewRequest("POST", "/menu", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
