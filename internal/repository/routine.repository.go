package repository

import (
	"homeos/internal/models"

	"gorm.io/gorm"
)

type RoutineRepository interface {
	CreateWithExercises(routine *models.Routine, exercises []models.RoutineExercise) error
	FindAllByUserID(userID uint) ([]models.Routine, error)
	FindByID(id uint) (*models.Routine, error)
	UpdateWithExercises(routine *models.Routine, exercises []models.RoutineExercise) error
	Delete(id uint) error
}

type routineRepository struct {
	db *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &routineRepository{db}
}

func (r *routineRepository) CreateWithExercises(routine *models.Routine, exercises []models.RoutineExercise) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Exercises").Create(routine).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].RoutineID = routine.ID
			if err := tx.Create(&exercises[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *routineRepository) FindAllByUserID(userID uint) ([]models.Routine, error) {
	var routines []models.Routine
	err := r.db.Where("user_id = ?", userID).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("routine_exercises.position")
		}).
		Preload("Exercises.Exercise").
		Order("name").
		Find(&routines).Error
	return routines, err
}

func (r *routineRepository) FindByID(id uint) (*models.Routine, error) {
	var routine models.Routine
	err := r.db.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("routine_exercises.position")
	}).
		Preload("Exercises.Exercise").
		First(&routine, id).Error
	if err != nil {
		return nil, err
	}
	return &routine, nil
}

func (r *routineRepository) UpdateWithExercises(routine *models.Routine, exercises []models.RoutineExercise) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Exercises").Save(routine).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].ID = 0
			exercises[i].RoutineID = routine.ID
			if err := tx.Create(&exercises[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *routineRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("routine_id = ?", id).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Routine{}, id).Error
	})
}
