package repository

import (
	"homeos/internal/models"

	"gorm.io/gorm"
)

type ChoreRepository interface {
	Create(chore *models.Chore) error
	FindAllByUserID(userID uint) ([]models.Chore, error)
	FindByID(id uint) (*models.Chore, error)
	Update(chore *models.Chore) error
	Delete(id uint) error
}

type choreRepository struct {
	db *gorm.DB
}

func NewChoreRepository(db *gorm.DB) ChoreRepository {
	return &choreRepository{db}
}

func (r *choreRepository) Create(chore *models.Chore) error {
	return r.db.Create(chore).Error
}

func (r *choreRepository) FindAllByUserID(userID uint) ([]models.Chore, error) {
	var chores []models.Chore
	err := r.db.Where("user_id = ?", userID).Order("next_due ASC NULLS LAST, name").Find(&chores).Error
	return chores, err
}

func (r *choreRepository) FindByID(id uint) (*models.Chore, error) {
	var chore models.Chore
	err := r.db.First(&chore, id).Error
	if err != nil {
		return nil, err
	}
	return &chore, nil
}

func (r *choreRepository) Update(chore *models.Chore) error {
	return r.db.Save(chore).Error
}

func (r *choreRepository) Delete(id uint) error {
	return r.db.Delete(&models.Chore{}, id).Error
}

type LaundryRepository interface {
	Create(job *models.LaundryJob) error
	FindAllByUserID(userID uint) ([]models.LaundryJob, error)
	FindByID(id uint) (*models.LaundryJob, error)
	Update(job *models.LaundryJob) error
	Delete(id uint) error
}

type laundryRepository struct {
	db *gorm.DB
}

func NewLaundryRepository(db *gorm.DB) LaundryRepository {
	return &laundryRepository{db}
}

func (r *laundryRepository) Create(job *models.LaundryJob) error {
	return r.db.Create(job).Error
}

func (r *laundryRepository) FindAllByUserID(userID uint) ([]models.LaundryJob, error) {
	var jobs []models.LaundryJob
	err := r.db.Where("user_id = ?", userID).Order("status, preferred_day").Find(&jobs).Error
	return jobs, err
}

func (r *laundryRepository) FindByID(id uint) (*models.LaundryJob, error) {
	var job models.LaundryJob
	err := r.db.First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *laundryRepository) Update(job *models.LaundryJob) error {
	return r.db.Save(job).Error
}

func (r *laundryRepository) Delete(id uint) error {
	return r.db.Delete(&models.LaundryJob{}, id).Error
}
