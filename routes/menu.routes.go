package routes

import (
	"homeos/internal/controllers"
	"homeos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.Engine, menuController *controllers.MenuController) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Use(middleware.AuthMiddleware())
	{
		menuRoutes.GET("/", menuController.GetWeek)
		menuRoutes.POST("/", menuController.SaveWeek)
	}
}
