package mocks

import (
	"time"

	"homeos/internal/models"
	"homeos/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockIngredientRepository
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ingredient *models.Ingredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) FindAll() ([]models.Ingredient, error) {
	args := m.Called()
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByID(id uint) (*models.Ingredient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByName(name string) (*models.Ingredient, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Update(ingredient *models.Ingredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateWithIngredients(recipe *models.Recipe, assocs []models.RecipeIngredient) error {
	args := m.Called(recipe, assocs)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindAllByUserID(userID uint) ([]models.Recipe, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByID(id uint) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) UpdateWithIngredients(recipe *models.Recipe, assocs []models.RecipeIngredient) error {
	args := m.Called(recipe, assocs)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockMenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) FindWeek(userID uint, weekStart time.Time) ([]models.WeeklyMenu, error) {
	args := m.Called(userID, weekStart)
	return args.Get(0).([]models.WeeklyMenu), args.Error(1)
}

func (m *MockMenuRepository) ReplaceDaySelections(userID uint, weekStart time.Time, day string, selections []models.MenuSelection) error {
	args := m.Called(userID, weekStart, day, selections)
	return args.Error(0)
}

// Shared MockShoppingRepository
type MockShoppingRepository struct {
	mock.Mock
}

func (m *MockShoppingRepository) FindAllByUserID(userID uint) ([]models.ShoppingItem, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.ShoppingItem), args.Error(1)
}

func (m *MockShoppingRepository) FindByID(id uint) (*models.ShoppingItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShoppingItem), args.Error(1)
}

func (m *MockShoppingRepository) Create(item *models.ShoppingItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockShoppingRepository) Update(item *models.ShoppingItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockShoppingRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockShoppingRepository) DeleteCompleted(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockShoppingRepository) ReplaceAutoItems(userID uint, items []models.ShoppingItem) error {
	args := m.Called(userID, items)
	return args.Error(0)
}

// Shared MockExerciseRepository
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(exercise *models.Exercise) error {
	args := m.Called(exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) FindAllByUserID(userID uint) ([]models.Exercise, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) FindByID(id uint) (*models.Exercise, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Update(exercise *models.Exercise) error {
	args := m.Called(exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRoutineRepository
type MockRoutineRepository struct {
	mock.Mock
}

func (m *MockRoutineRepository) CreateWithExercises(routine *models.Routine, exercises []models.RoutineExercise) error {
	args := m.Called(routine, exercises)
	return args.Error(0)
}

func (m *MockRoutineRepository) FindAllByUserID(userID uint) ([]models.Routine, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Routine), args.Error(1)
}

func (m *MockRoutineRepository) FindByID(id uint) (*models.Routine, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineRepository) UpdateWithExercises(routine *models.Routine, exercises []models.RoutineExercise) error {
	args := m.Called(routine, exercises)
	return args.Error(0)
}

func (m *MockRoutineRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockWorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) CreateSession(session *models.WorkoutSession, sets []models.WorkoutSet) error {
	args := m.Called(session, sets)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindAllByUserID(userID uint) ([]models.WorkoutSession, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WorkoutSession), args.Error(1)
}

func (m *MockWorkoutRepository) FindRecentByUserID(userID uint, limit int) ([]models.WorkoutSession, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.WorkoutSession), args.Error(1)
}

func (m *MockWorkoutRepository) FindByID(id uint) (*models.WorkoutSession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutSession), args.Error(1)
}

func (m *MockWorkoutRepository) FindByUserIDAndDateRange(userID uint, start, end time.Time) (*models.WorkoutSession, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutSession), args.Error(1)
}

func (m *MockWorkoutRepository) UpdateSession(session *models.WorkoutSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindLastSetByExercise(userID, exerciseID uint) (*models.WorkoutSet, error) {
	args := m.Called(userID, exerciseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutSet), args.Error(1)
}

func (m *MockWorkoutRepository) FindProgressSamples(userID, exerciseID uint) ([]repository.SetSample, error) {
	args := m.Called(userID, exerciseID)
	return args.Get(0).([]repository.SetSample), args.Error(1)
}

// Shared MockMeasurementRepository
type MockMeasurementRepository struct {
	mock.Mock
}

func (m *MockMeasurementRepository) Create(measurement *models.BodyMeasurement) error {
	args := m.Called(measurement)
	return args.Error(0)
}

func (m *MockMeasurementRepository) FindAllByUserID(userID uint) ([]models.BodyMeasurement, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindByID(id uint) (*models.BodyMeasurement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindLatestByUserID(userID uint) (*models.BodyMeasurement, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindFirstByUserID(userID uint) (*models.BodyMeasurement, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindLatestBefore(userID uint, t time.Time) (*models.BodyMeasurement, error) {
	args := m.Called(userID, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindByUserIDAndDateRange(userID uint, start, end time.Time) (*models.BodyMeasurement, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) Update(measurement *models.BodyMeasurement) error {
	args := m.Called(measurement)
	return args.Error(0)
}

func (m *MockMeasurementRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockChoreRepository
type MockChoreRepository struct {
	mock.Mock
}

func (m *MockChoreRepository) Create(chore *models.Chore) error {
	args := m.Called(chore)
	return args.Error(0)
}

func (m *MockChoreRepository) FindAllByUserID(userID uint) ([]models.Chore, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Chore), args.Error(1)
}

func (m *MockChoreRepository) FindByID(id uint) (*models.Chore, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chore), args.Error(1)
}

func (m *MockChoreRepository) Update(chore *models.Chore) error {
	args := m.Called(chore)
	return args.Error(0)
}

func (m *MockChoreRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockLaundryRepository
type MockLaundryRepository struct {
	mock.Mock
}

func (m *MockLaundryRepository) Create(job *models.LaundryJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockLaundryRepository) FindAllByUserID(userID uint) ([]models.LaundryJob, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.LaundryJob), args.Error(1)
}

func (m *MockLaundryRepository) FindByID(id uint) (*models.LaundryJob, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LaundryJob), args.Error(1)
}

func (m *MockLaundryRepository) Update(job *models.LaundryJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockLaundryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
