package repository

import (
	"homeos/internal/models"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(exercise *models.Exercise) error
	FindAllByUserID(userID uint) ([]models.Exercise, error)
	FindByID(id uint) (*models.Exercise, error)
	Update(exercise *models.Exercise) error
	Delete(id uint) error
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db}
}

func (r *exerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

func (r *exerciseRepository) FindAllByUserID(userID uint) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("user_id = ?", userID).
		Order("muscle_group, name").
		Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepository) FindByID(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.First(&exercise, id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) Update(exercise *models.Exercise) error {
	return r.db.Save(exercise).Error
}

// Delete fails with a foreign-key style error when the exercise is still
// referenced by routine or workout rows; callers surface that as a warning
// instead of cascading into logged history.
func (r *exerciseRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var inRoutines, inSets int64
		if err := tx.Model(&models.RoutineExercise{}).Where("exercise_id = ?", id).Count(&inRoutines).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.WorkoutSet{}).Where("exercise_id = ?", id).Count(&inSets).Error; err != nil {
			return err
		}
		if inRoutines > 0 || inSets > 0 {
			return gorm.ErrForeignKeyViolated
		}
		return tx.Delete(&models.Exercise{}, id).Error
	})
}
