package models

import (
	"time"

	"gorm.io/gorm"
)

// Chore frequencies understood by the "mark done" scheduler.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

type Chore struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID     uint           `gorm:"index" json:"user_id"`
	User       User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name       string         `gorm:"size:100" json:"name" example:"Vacuum living room"`
	AssignedTo string         `gorm:"size:50" json:"assigned_to"`
	Frequency  string         `gorm:"size:50" json:"frequency" example:"weekly"`
	LastDone   *time.Time     `json:"last_done,omitempty"`
	NextDue    *time.Time     `json:"next_due,omitempty"`
}

// Laundry job states.
const (
	LaundryPending = "pending"
	LaundryDone    = "done"
)

type LaundryJob struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID       uint           `gorm:"index" json:"user_id"`
	User         User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Kind         string         `gorm:"size:50" json:"kind" example:"whites"`
	PreferredDay string         `gorm:"size:20" json:"preferred_day" example:"Saturday"`
	Status       string         `gorm:"size:20;default:pending" json:"status"`
}
