package models

import (
	"time"

	"gorm.io/gorm"
)

// Routine is a named workout template: an ordered list of exercises with
// target series, rest and (for cardio) distance/time goals.
type Routine struct {
	ID          uint              `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint              `gorm:"index" json:"user_id"`
	User        User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string            `gorm:"size:100" json:"name" example:"Push day"`
	Description string            `json:"description"`
	Exercises   []RoutineExercise `gorm:"foreignKey:RoutineID" json:"exercises"`
}

type RoutineExercise struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	RoutineID      uint     `gorm:"index" json:"routine_id"`
	ExerciseID     uint     `json:"exercise_id"`
	Exercise       Exercise `gorm:"foreignKey:ExerciseID" json:"exercise"`
	Position       int      `gorm:"column:position" json:"position"`
	Series         int      `gorm:"default:3" json:"series"`
	RestSeconds    int      `gorm:"default:60" json:"rest_seconds"`
	TargetDistance float64  `gorm:"default:0" json:"target_distance"`
	TargetTime     int      `gorm:"default:0" json:"target_time"`
}
