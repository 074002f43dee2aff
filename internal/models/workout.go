package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutSession struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id"`
	User          User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Date          time.Time      `gorm:"index" json:"date"`
	Note          string         `json:"note"`
	PhotoFilename string         `json:"photo_filename,omitempty"`
	Sets          []WorkoutSet   `gorm:"foreignKey:SessionID" json:"sets"`
}

// WorkoutSet is one materialized set; an entry submitted with series=N
// produces N rows sharing the same Position.
type WorkoutSet struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	SessionID  uint     `gorm:"index" json:"session_id"`
	ExerciseID uint     `gorm:"index" json:"exercise_id"`
	Exercise   Exercise `gorm:"foreignKey:ExerciseID" json:"exercise"`
	Position   int      `gorm:"column:position" json:"position"`
	Weight     float64  `gorm:"default:0" json:"weight"`
	Reps       int      `gorm:"default:0" json:"reps"`
	Distance   float64  `gorm:"default:0" json:"distance"`
	Time       int      `gorm:"default:0" json:"time"`
}
