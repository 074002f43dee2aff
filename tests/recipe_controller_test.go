package tests

import (
	"errors"
	"net/http"
	"testing"

	"homeos/internal/controllers"
	"homeos/internal/models"
	"homeos/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRecipeController() (*controllers.RecipeController, *mocks.MockRecipeRepository) {
	mockRepo := new(mocks.MockRecipeRepository)
	controller := controllers.NewRecipeController(mockRepo)
	return controller, mockRepo
}

func TestListRecipesComputesTotals(t *testing.T) {
	controller, mockRepo := setupRecipeController()

	recipes := []models.Recipe{
		{
			ID:     1,
			UserID: 1,
			Title:  "Chicken with rice",
			Ingredients: []models.RecipeIngredient{
				{Ingredient: models.Ingredient{ID: 1, Name: "Rice", Kcal100g: 130, PriceKg: 2}, QuantityG: 200},
				{Ingredient: models.Ingredient{ID: 2, Name: "Chicken breast", Kcal100g: 165, PriceKg: 6}, QuantityG: 150},
			},
		},
	}
	mockRepo.On("FindAllByUserID", uint(1)).Return(recipes, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/recipes", controller.ListRecipes)

	w := performJSON(router, "GET", "/recipes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	views := response["data"].([]interface{})
	assert.Len(t, views, 1)

	totals := views[0].(map[string]interface{})["totals"].(map[string]interface{})
	assert.Equal(t, float64(508), totals["kcal"])
	assert.Equal(t, 1.3, totals["price"])

	mockRepo.AssertExpectations(t)
}

func TestCreateRecipe(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockRecipeRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"title": "Chicken with rice",
				"ingredients": []map[string]interface{}{
					{"ingredient_id": 1, "quantity_g": 200},
					{"ingredient_id": 2, "quantity_g": 150},
				},
			},
			setupMock: func(m *mocks.MockRecipeRepository) {
				m.On("CreateWithIngredients", mock.AnythingOfType("*models.Recipe"),
					mock.MatchedBy(func(assocs []models.RecipeIngredient) bool {
						return len(assocs) == 2
					})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Recipe created successfully",
		},
		{
			name: "malformed ingredient entries are skipped",
			requestBody: map[string]interface{}{
				"title": "Salad",
				"ingredients": []map[string]interface{}{
					{"ingredient_id": 0, "quantity_g": 100},  // no ingredient
					{"ingredient_id": 3, "quantity_g": -5},   // negative quantity
					{"ingredient_id": 4, "quantity_g": 50.5}, // valid
				},
			},
			setupMock: func(m *mocks.MockRecipeRepository) {
				m.On("CreateWithIngredients", mock.AnythingOfType("*models.Recipe"),
					mock.MatchedBy(func(assocs []models.RecipeIngredient) bool {
						return len(assocs) == 1 && assocs[0].IngredientID == 4
					})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Recipe created successfully",
		},
		{
			name:           "missing title",
			requestBody:    map[string]interface{}{"description": "no title"},
			setupMock:      func(m *mocks.MockRecipeRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:        "repository error",
			requestBody: map[string]interface{}{"title": "Broken"},
			setupMock: func(m *mocks.MockRecipeRepository) {
				m.On("CreateWithIngredients", mock.AnythingOfType("*models.Recipe"),
					mock.AnythingOfType("[]models.RecipeIngredient")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create recipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupRecipeController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/recipes", controller.CreateRecipe)

			w := performJSON(router, "POST", "/recipes", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeResponse(t, w)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetRecipeOwnership(t *testing.T) {
	controller, mockRepo := setupRecipeController()
	mockRepo.On("FindByID", uint(5)).Return(&models.Recipe{ID: 5, UserID: 2, Title: "Not yours"}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/recipes/:id", controller.GetRecipe)

	w := performJSON(router, "GET", "/recipes/5", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	response := decodeResponse(t, w)
	assert.Contains(t, response["message"], "permission")
}

func TestGetRecipeNotFound(t *testing.T) {
	controller, mockRepo := setupRecipeController()
	mockRepo.On("FindByID", uint(99)).Return(nil, errors.New("record not found"))

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/recipes/:id", controller.GetRecipe)

	w := performJSON(router, "GET", "/recipes/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	controller, mockRepo := setupRecipeController()
	mockRepo.On("FindByID", uint(3)).Return(&models.Recipe{ID: 3, UserID: 1}, nil)
	mockRepo.On("Delete", uint(3)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/recipes/:id", controller.DeleteRecipe)

	w := performJSON(router, "DELETE", "/recipes/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Contains(t, response["message"], "Recipe deleted successfully")

	mockRepo.AssertExpectations(t)
}
