package repository

import (
	"time"

	"homeos/internal/models"

	"gorm.io/gorm"
)

// SetSample is one (session date, weight) pair for progress charting.
type SetSample struct {
	Date   time.Time
	Weight float64
}

type WorkoutRepository interface {
	CreateSession(session *models.WorkoutSession, sets []models.WorkoutSet) error
	FindAllByUserID(userID uint) ([]models.WorkoutSession, error)
	FindRecentByUserID(userID uint, limit int) ([]models.WorkoutSession, error)
	FindByID(id uint) (*models.WorkoutSession, error)
	FindByUserIDAndDateRange(userID uint, start, end time.Time) (*models.WorkoutSession, error)
	UpdateSession(session *models.WorkoutSession) error
	Delete(id uint) error
	FindLastSetByExercise(userID, exerciseID uint) (*models.WorkoutSet, error)
	FindProgressSamples(userID, exerciseID uint) ([]SetSample, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db}
}

// CreateSession persists the session and its materialized sets atomically;
// no partial session survives a failed insert.
func (r *workoutRepository) CreateSession(session *models.WorkoutSession, sets []models.WorkoutSet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Sets").Create(session).Error; err != nil {
			return err
		}
		for i := range sets {
			sets[i].SessionID = session.ID
			if err := tx.Omit("Exercise").Create(&sets[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *workoutRepository) FindAllByUserID(userID uint) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := r.db.Where("user_id = ?", userID).
		Preload("Sets.Exercise").
		Order("date DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *workoutRepository) FindRecentByUserID(userID uint, limit int) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := r.db.Where("user_id = ?", userID).
		Preload("Sets.Exercise").
		Order("date DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *workoutRepository) FindByID(id uint) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	err := r.db.Preload("Sets", func(db *gorm.DB) *gorm.DB {
		return db.Order("workout_sets.position, workout_sets.id")
	}).
		Preload("Sets.Exercise").
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *workoutRepository) FindByUserIDAndDateRange(userID uint, start, end time.Time) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Preload("Sets.Exercise").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *workoutRepository) UpdateSession(session *models.WorkoutSession) error {
	return r.db.Omit("Sets").Save(session).Error
}

func (r *workoutRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.WorkoutSet{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.WorkoutSession{}, id).Error
	})
}

// FindLastSetByExercise returns the most recently logged set for one
// exercise across all of the user's sessions, used for routine prefill.
func (r *workoutRepository) FindLastSetByExercise(userID, exerciseID uint) (*models.WorkoutSet, error) {
	var set models.WorkoutSet
	err := r.db.Joins("JOIN workout_sessions ON workout_sessions.id = workout_sets.session_id").
		Where("workout_sessions.user_id = ? AND workout_sets.exercise_id = ?", userID, exerciseID).
		Order("workout_sessions.date DESC").
		First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *workoutRepository) FindProgressSamples(userID, exerciseID uint) ([]SetSample, error) {
	var samples []SetSample
	err := r.db.Model(&models.WorkoutSet{}).
		Select("workout_sessions.date AS date, workout_sets.weight AS weight").
		Joins("JOIN workout_sessions ON workout_sessions.id = workout_sets.session_id").
		Where("workout_sessions.user_id = ? AND workout_sets.exercise_id = ?", userID, exerciseID).
		Order("workout_sessions.date ASC").
		Scan(&samples).Error
	return samples, err
}
