package models

import (
	"time"

	"gorm.io/gorm"
)

// ShoppingItem rows with IsAuto set are a materialized view of the current
// weekly menu and are fully replaced on every menu save. Manual items are
// never touched by that process.
type ShoppingItem struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string         `gorm:"size:100" json:"name" example:"Rice"`
	Quantity  float64        `gorm:"default:1" json:"quantity" example:"400"`
	Unit      string         `gorm:"size:20;default:ud" json:"unit" example:"g"`
	Completed bool           `gorm:"default:false" json:"completed"`
	IsAuto    bool           `gorm:"default:false" json:"is_auto"`
}
