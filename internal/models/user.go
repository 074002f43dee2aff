package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username        string  `gorm:"uniqueIndex;size:50" json:"username" example:"marta"`
	Email           string  `gorm:"uniqueIndex;size:120" json:"email" example:"marta@example.com"`
	Password        string  `json:"-"`
	IsAdmin         bool    `gorm:"default:false" json:"is_admin"`
	Age             int     `json:"age" example:"32"`
	Height          float64 `json:"height" example:"170"`
	Weight          float64 `json:"weight" example:"68.5"`
	Gender          string  `gorm:"size:10" json:"gender" example:"female"`
	TargetWeight    float64 `json:"target_weight" example:"63"`
	BasalMetabolism int     `json:"basal_metabolism" example:"1450"`
}
