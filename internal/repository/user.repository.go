package repository

import (
	"homeos/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("username").Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser removes the user and every owned row in one transaction so a
// half-deleted account can never be observed.
func (r *userRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Child tables without a user_id column are scoped through their parent.
		if err := tx.Where("menu_id IN (?)",
			tx.Model(&models.WeeklyMenu{}).Select("id").Where("user_id = ?", id),
		).Delete(&models.MenuSelection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id IN (?)",
			tx.Model(&models.Recipe{}).Select("id").Where("user_id = ?", id),
		).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id IN (?)",
			tx.Model(&models.WorkoutSession{}).Select("id").Where("user_id = ?", id),
		).Delete(&models.WorkoutSet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id IN (?)",
			tx.Model(&models.Routine{}).Select("id").Where("user_id = ?", id),
		).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		owned := []interface{}{
			&models.WeeklyMenu{},
			&models.Recipe{},
			&models.ShoppingItem{},
			&models.WorkoutSession{},
			&models.Routine{},
			&models.Exercise{},
			&models.BodyMeasurement{},
			&models.Chore{},
			&models.LaundryJob{},
		}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
