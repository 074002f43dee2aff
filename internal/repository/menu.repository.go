package repository

import (
	"time"

	"homeos/internal/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	FindWeek(userID uint, weekStart time.Time) ([]models.WeeklyMenu, error)
	ReplaceDaySelections(userID uint, weekStart time.Time, day string, selections []models.MenuSelection) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db}
}

func (r *menuRepository) FindWeek(userID uint, weekStart time.Time) ([]models.WeeklyMenu, error) {
	var menus []models.WeeklyMenu
	err := r.db.Where("user_id = ? AND week_start = ?", userID, weekStart).
		Preload("Selections").
		Preload("Selections.Recipe.Ingredients.Ingredient").
		Preload("Selections.Ingredient").
		Find(&menus).Error
	return menus, err
}

// ReplaceDaySelections is the clear-then-insert write for one day cell:
// prior selections for (user, week, day) are deleted and the submitted set
// inserted in a single transaction. A mid-way failure restores the pre-save
// state. Concurrent saves by the same user to the same week are
// last-write-wins; there is no locking beyond the user scoping.
func (r *menuRepository) ReplaceDaySelections(userID uint, weekStart time.Time, day string, selections []models.MenuSelection) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var menu models.WeeklyMenu
		err := tx.Where("user_id = ? AND week_start = ? AND day = ?", userID, weekStart, day).
			First(&menu).Error
		if err == gorm.ErrRecordNotFound {
			menu = models.WeeklyMenu{UserID: userID, WeekStart: weekStart, Day: day}
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.MenuSelection{}).Error; err != nil {
			return err
		}
		for i := range selections {
			selections[i].ID = 0
			selections[i].MenuID = menu.ID
			if err := tx.Create(&selections[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
