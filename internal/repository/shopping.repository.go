package repository

import (
	"homeos/internal/models"

	"gorm.io/gorm"
)

type ShoppingRepository interface {
	FindAllByUserID(userID uint) ([]models.ShoppingItem, error)
	FindByID(id uint) (*models.ShoppingItem, error)
	Create(item *models.ShoppingItem) error
	Update(item *models.ShoppingItem) error
	Delete(id uint) error
	DeleteCompleted(userID uint) error
	ReplaceAutoItems(userID uint, items []models.ShoppingItem) error
}

type shoppingRepository struct {
	db *gorm.DB
}

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db}
}

func (r *shoppingRepository) FindAllByUserID(userID uint) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := r.db.Where("user_id = ?", userID).
		Order("completed, name").
		Find(&items).Error
	return items, err
}

func (r *shoppingRepository) FindByID(id uint) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) Create(item *models.ShoppingItem) error {
	return r.db.Create(item).Error
}

func (r *shoppingRepository) Update(item *models.ShoppingItem) error {
	return r.db.Save(item).Error
}

func (r *shoppingRepository) Delete(id uint) error {
	return r.db.Delete(&models.ShoppingItem{}, id).Error
}

func (r *shoppingRepository) DeleteCompleted(userID uint) error {
	return r.db.Where("user_id = ? AND completed = ?", userID, true).
		Delete(&models.ShoppingItem{}).Error
}

// ReplaceAutoItems swaps the derived portion of the shopping list for a
// fresh aggregate: all is_auto rows go, the new ones come in, manual rows
// are untouched. One transaction, so readers never see the list half-built.
func (r *shoppingRepository) ReplaceAutoItems(userID uint, items []models.ShoppingItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND is_auto = ?", userID, true).
			Delete(&models.ShoppingItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].UserID = userID
			items[i].IsAuto = true
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
