package routes

import (
	"homeos/internal/controllers"
	"homeos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/register", userController.RegisterUser)
		userRoutesPublic.POST("/login", userController.LoginUser)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
		userRoutesPrivate.PUT("/me", userController.UpdateProfile)
	}
}

func RegisterAdminRoutes(router *gin.Engine, userController *controllers.UserController) {
	adminRoutes := router.Group("/admin/users")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminRoutes.GET("/", userController.ListUsers)
		adminRoutes.POST("/", userController.CreateUserAdmin)
		adminRoutes.PUT("/:id", userController.UpdateUserAdmin)
		adminRoutes.DELETE("/:id", userController.DeleteUserAdmin)
		adminRoutes.POST("/:id/toggle-admin", userController.ToggleAdminRole)
	}
}
