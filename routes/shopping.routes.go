package routes

import (
	"homeos/internal/controllers"
	"homeos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterShoppingRoutes(router *gin.Engine, shoppingController *controllers.ShoppingController) {
	shoppingRoutes := router.Group("/shopping")
	shoppingRoutes.Use(middleware.AuthMiddleware())
	{
		shoppingRoutes.GET("/", shoppingController.ListItems)
		shoppingRoutes.POST("/", shoppingController.AddItem)
		shoppingRoutes.POST("/:id/toggle", shoppingController.ToggleItem)
		shoppingRoutes.DELETE("/completed", shoppingController.ClearCompleted)
	}
}
