package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"homeos/database"
	"homeos/internal/controllers"
	"homeos/internal/repository"
	"homeos/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Home OS API
// @version 1.0
// @description Personal home management API: meal planning, shopping, chores and gym tracking.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found: %v", err)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	userRepo := repository.NewUserRepository(database.DB)
	ingredientRepo := repository.NewIngredientRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	menuRepo := repository.NewMenuRepository(database.DB)
	shoppingRepo := repository.NewShoppingRepository(database.DB)
	exerciseRepo := repository.NewExerciseRepository(database.DB)
	routineRepo := repository.NewRoutineRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)
	measurementRepo := repository.NewMeasurementRepository(database.DB)
	choreRepo := repository.NewChoreRepository(database.DB)
	laundryRepo := repository.NewLaundryRepository(database.DB)

	userController := controllers.NewUserController(userRepo)
	ingredientController := controllers.NewIngredientController(ingredientRepo)
	recipeController := controllers.NewRecipeController(recipeRepo)
	menuController := controllers.NewMenuController(menuRepo, shoppingRepo)
	shoppingController := controllers.NewShoppingController(shoppingRepo)
	exerciseController := controllers.NewExerciseController(exerciseRepo)
	routineController := controllers.NewRoutineController(routineRepo)
	workoutController := controllers.NewWorkoutController(workoutRepo, routineRepo, exerciseRepo)
	measurementController := controllers.NewMeasurementController(measurementRepo)
	choreController := controllers.NewChoreController(choreRepo, laundryRepo)
	dashboardController := controllers.NewDashboardController(userRepo, menuRepo, workoutRepo, measurementRepo, choreRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Home OS API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterAdminRoutes(router, userController)
	routes.RegisterIngredientRoutes(router, ingredientController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterMenuRoutes(router, menuController)
	routes.RegisterShoppingRoutes(router, shoppingController)
	routes.RegisterGymRoutes(router, exerciseController, routineController, workoutController, measurementController)
	routes.RegisterChoreRoutes(router, choreController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
