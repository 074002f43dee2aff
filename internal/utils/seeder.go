package utils

import (
	"fmt"
	"log"

	"homeos/internal/fitness"
	"homeos/internal/models"

	"gorm.io/gorm"
)

// DefaultAdminPassword is only used when the seeder is not given one.
const DefaultAdminPassword = "changeme"

var starterIngredients = []models.Ingredient{
	{Name: "Rice", Kcal100g: 130, PriceKg: 2.0},
	{Name: "Pasta", Kcal100g: 131, PriceKg: 1.8},
	{Name: "Chicken breast", Kcal100g: 165, PriceKg: 6.0},
	{Name: "Ground beef", Kcal100g: 250, PriceKg: 9.5},
	{Name: "Salmon", Kcal100g: 208, PriceKg: 14.0},
	{Name: "Egg", Kcal100g: 155, PriceKg: 3.2},
	{Name: "Milk", Kcal100g: 42, PriceKg: 1.1},
	{Name: "Olive oil", Kcal100g: 884, PriceKg: 8.0},
	{Name: "Tomato", Kcal100g: 18, PriceKg: 2.2},
	{Name: "Onion", Kcal100g: 40, PriceKg: 1.5},
	{Name: "Potato", Kcal100g: 77, PriceKg: 1.2},
	{Name: "Lentils", Kcal100g: 116, PriceKg: 2.5},
	{Name: "Chickpeas", Kcal100g: 164, PriceKg: 2.3},
	{Name: "Bread", Kcal100g: 265, PriceKg: 2.8},
	{Name: "Cheese", Kcal100g: 402, PriceKg: 12.0},
	{Name: "Yogurt", Kcal100g: 59, PriceKg: 2.4},
	{Name: "Banana", Kcal100g: 89, PriceKg: 1.6},
	{Name: "Apple", Kcal100g: 52, PriceKg: 2.0},
	{Name: "Tuna (canned)", Kcal100g: 116, PriceKg: 10.0},
	{Name: "Spinach", Kcal100g: 23, PriceKg: 3.0},
}

var starterExercises = []models.Exercise{
	{Name: "Bench press", MuscleGroup: "Chest", BurnRate: 0.5},
	{Name: "Incline dumbbell press", MuscleGroup: "Chest", BurnRate: 0.45},
	{Name: "Squat", MuscleGroup: "Legs", BurnRate: 0.6},
	{Name: "Leg press", MuscleGroup: "Legs", BurnRate: 0.5},
	{Name: "Deadlift", MuscleGroup: "Back", BurnRate: 0.7},
	{Name: "Lat pulldown", MuscleGroup: "Back", BurnRate: 0.4},
	{Name: "Barbell row", MuscleGroup: "Back", BurnRate: 0.5},
	{Name: "Overhead press", MuscleGroup: "Shoulders", BurnRate: 0.45},
	{Name: "Lateral raise", MuscleGroup: "Shoulders", BurnRate: 0.3},
	{Name: "Biceps curl", MuscleGroup: "Arms", BurnRate: 0.3},
	{Name: "Triceps pushdown", MuscleGroup: "Arms", BurnRate: 0.3},
	{Name: "Plank", MuscleGroup: "Core", BurnRate: 0.2},
	{Name: "Treadmill run", MuscleGroup: models.MuscleGroupCardio, BurnRate: 10},
	{Name: "Stationary bike", MuscleGroup: models.MuscleGroupCardio, BurnRate: 7},
	{Name: "Rowing machine", MuscleGroup: models.MuscleGroupCardio, BurnRate: 9},
}

// SeedAdminUser creates the initial admin account if no user with that
// username exists yet. Returns the admin's ID either way.
func SeedAdminUser(db *gorm.DB, username, email, password string) (uint, error) {
	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Printf("Admin user %q already exists (id=%d), skipping", username, existing.ID)
		return existing.ID, nil
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hashing admin password: %w", err)
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
		Age:      30,
		Height:   175,
		Weight:   70,
		Gender:   "male",
	}
	admin.BasalMetabolism = fitness.CalculateBMR(admin.Gender, admin.Age, admin.Height, admin.Weight)

	if err := db.Create(&admin).Error; err != nil {
		return 0, fmt.Errorf("creating admin user: %w", err)
	}
	log.Printf("Created admin user %q (id=%d)", username, admin.ID)
	return admin.ID, nil
}

// SeedIngredients inserts the starter ingredient catalog. Existing names are
// left untouched so re-running the seeder is safe.
func SeedIngredients(db *gorm.DB) error {
	created := 0
	for _, ing := range starterIngredients {
		var existing models.Ingredient
		if err := db.Where("name = ?", ing.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&ing).Error; err != nil {
			return fmt.Errorf("creating ingredient %q: %w", ing.Name, err)
		}
		created++
	}
	log.Printf("Seeded %d ingredients (%d already present)", created, len(starterIngredients)-created)
	return nil
}

// SeedExercises inserts the starter exercise set for one user. Existing
// names owned by that user are left untouched.
func SeedExercises(db *gorm.DB, userID uint) error {
	created := 0
	for _, ex := range starterExercises {
		var existing models.Exercise
		if err := db.Where("user_id = ? AND name = ?", userID, ex.Name).First(&existing).Error; err == nil {
			continue
		}
		ex.UserID = userID
		if err := db.Create(&ex).Error; err != nil {
			return fmt.Errorf("creating exercise %q: %w", ex.Name, err)
		}
		created++
	}
	log.Printf("Seeded %d exercises for user %d (%d already present)", created, userID, len(starterExercises)-created)
	return nil
}

// ClearCatalogs removes every seeded ingredient and exercise. Recipes and
// workouts referencing them keep their rows; aggregates skip the dangling
// references.
func ClearCatalogs(db *gorm.DB) error {
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Ingredient{}).Error; err != nil {
		return fmt.Errorf("clearing ingredients: %w", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Exercise{}).Error; err != nil {
		return fmt.Errorf("clearing exercises: %w", err)
	}
	log.Println("Cleared ingredient and exercise catalogs")
	return nil
}
