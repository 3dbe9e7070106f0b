package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Name          string `gorm:"not null"`
	Age           int    `gorm:"default:25"`
	Gender        string `gorm:"size:10;default:male"`
	Height        float64 // cm
	Weight        float64 // kg
	ActivityLevel string  `gorm:"size:20;default:moderate"`
	Goal          string  `gorm:"size:20;default:maintain"` // "lose" | "maintain" | "gain"
	IsAdmin       bool    `gorm:"default:false"`

	FoodLogs        []FoodLog        `gorm:"constraint:OnDelete:CASCADE"`
	WorkoutSessions []WorkoutSession `gorm:"constraint:OnDelete:CASCADE"`
	BodyWeightLogs  []BodyWeightLog  `gorm:"constraint:OnDelete:CASCADE"`
	MacroGoal       *MacroGoal       `gorm:"constraint:OnDelete:CASCADE"`
}
