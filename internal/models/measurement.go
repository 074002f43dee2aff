package models

import (
	"time"

	"gorm.io/gorm"
)

// BodyMeasurement is a dated snapshot. Fields are pointers so an unset
// metric stays NULL instead of a meaningless zero; blanks may inherit the
// previous snapshot's value at creation time.
type BodyMeasurement struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Date      time.Time      `gorm:"index" json:"date"`
	Weight    *float64       `json:"weight,omitempty"`
	Chest     *float64       `json:"chest,omitempty"`
	Biceps    *float64       `json:"biceps,omitempty"`
	Hips      *float64       `json:"hips,omitempty"`
	Thigh     *float64       `json:"thigh,omitempty"`
	Calf      *float64       `json:"calf,omitempty"`
}
