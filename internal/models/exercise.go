package models

import (
	"time"

	"gorm.io/gorm"
)

// MuscleGroupCardio marks an exercise whose burn rate is kcal per minute
// instead of kcal per rep.
const MuscleGroupCardio = "Cardio"

type Exercise struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"index" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string         `gorm:"size:100" json:"name" example:"Bench press"`
	MuscleGroup string         `gorm:"size:50" json:"muscle_group" example:"Chest"`
	Description string         `json:"description"`
	VideoLink   string         `json:"video_link"`
	BurnRate    float64        `gorm:"default:0" json:"burn_rate" example:"0.5"`
}

// IsCardio reports whether the burn rate applies per minute.
func (e *Exercise) IsCardio() bool {
	return e.MuscleGroup == MuscleGroupCardio
}
