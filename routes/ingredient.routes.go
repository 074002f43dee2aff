package routes

import (
	"homeos/internal/controllers"
	"homeos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterIngredientRoutes(router *gin.Engine, ingredientController *controllers.IngredientController) {
	ingredientRoutes := router.Group("/ingredients")
	ingredientRoutes.Use(middleware.AuthMiddleware())
	{
		ingredientRoutes.GET("/", ingredientController.ListIngredients)
		ingredientRoutes.POST("/", ingredientController.CreateIngredient)
		ingredientRoutes.PUT("/:id", ingredientController.UpdateIngredient)
		ingredientRoutes.DELETE("/:id", ingredientController.DeleteIngredient)
	}
}
