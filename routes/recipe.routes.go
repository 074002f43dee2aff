package routes

import (
	"homeos/internal/controllers"
	"homeos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Use(middleware.AuthMiddleware())
	{
		recipeRoutes.GET("/", recipeController.ListRecipes)
		recipeRoutes.GET("/:id", recipeController.GetRecipe)
		recipeRoutes.POST("/", recipeController.CreateRecipe)
		recipeRoutes.PUT("/:id", recipeController.UpdateRecipe)
		recipeRoutes.DELETE("/:id", recipeController.DeleteRecipe)
	}
}
