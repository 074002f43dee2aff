package routes

import (
	"homeos/internal/controllers"
	"homeos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGymRoutes(
	router *gin.Engine,
	exerciseController *controllers.ExerciseController,
	routineController *controllers.RoutineController,
	workoutController *controllers.WorkoutController,
	measurementController *controllers.MeasurementController,
) {
	gymRoutes := router.Group("/gym")
	gymRoutes.Use(middleware.AuthMiddleware())
	{
		gymRoutes.GET("/exercises", exerciseController.ListExercises)
		gymRoutes.POST("/exercises", exerciseController.CreateExercise)
		gymRoutes.PUT("/exercises/:id", exerciseController.UpdateExercise)
		gymRoutes.DELETE("/exercises/:id", exerciseController.DeleteExercise)

		gymRoutes.GET("/routines", routineController.ListRoutines)
		gymRoutes.GET("/routines/:id", routineController.GetRoutine)
		gymRoutes.POST("/routines", routineController.CreateRoutine)
		gymRoutes.PUT("/routines/:id", routineController.UpdateRoutine)
		gymRoutes.DELETE("/routines/:id", routineController.DeleteRoutine)

		gymRoutes.GET("/workouts", workoutController.GetHistory)
		gymRoutes.POST("/workouts", workoutController.LogSession)
		gymRoutes.GET("/workouts/prefill/:routine_id", workoutController.GetPrefill)
		gymRoutes.GET("/workouts/:id", workoutController.GetSession)
		gymRoutes.PUT("/workouts/:id", workoutController.UpdateSession)
		gymRoutes.POST("/workouts/:id/photo", workoutController.UploadPhoto)
		gymRoutes.DELETE("/workouts/:id", workoutController.DeleteSession)
		gymRoutes.GET("/progress/:exercise_id", workoutController.GetProgress)

		gymRoutes.GET("/measurements", measurementController.GetMeasurements)
		gymRoutes.POST("/measurements", measurementController.CreateMeasurement)
		gymRoutes.PUT("/measurements/:id", measurementController.UpdateMeasurement)
		gymRoutes.DELETE("/measurements/:id", measurementController.DeleteMeasurement)
	}
}
