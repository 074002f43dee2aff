package routes

import (
	"homeos/internal/controllers"
	"homeos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChoreRoutes(router *gin.Engine, choreController *controllers.ChoreController) {
	choreRoutes := router.Group("/chores")
	choreRoutes.Use(middleware.AuthMiddleware())
	{
		choreRoutes.GET("/", choreController.GetChores)
		choreRoutes.POST("/", choreController.CreateChore)
		choreRoutes.PUT("/:id", choreController.UpdateChore)
		choreRoutes.POST("/:id/done", choreController.MarkChoreDone)
		choreRoutes.DELETE("/:id", choreController.DeleteChore)
	}

	laundryRoutes := router.Group("/laundry")
	laundryRoutes.Use(middleware.AuthMiddleware())
	{
		laundryRoutes.GET("/", choreController.GetLaundryJobs)
		laundryRoutes.POST("/", choreController.CreateLaundryJob)
		laundryRoutes.POST("/:id/toggle", choreController.ToggleLaundryJob)
		laundryRoutes.DELETE("/:id", choreController.DeleteLaundryJob)
	}
}
