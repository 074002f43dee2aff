package database

import (
	"log"

	"homeos/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.WeeklyMenu{},
		&models.MenuSelection{},
		&models.ShoppingItem{},
		&models.Exercise{},
		&models.Routine{},
		&models.RoutineExercise{},
		&models.WorkoutSession{},
		&models.WorkoutSet{},
		&models.BodyMeasurement{},
		&models.Chore{},
		&models.LaundryJob{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
