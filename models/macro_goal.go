package models

import (
	"gorm.io/gorm"
)

// MacroGoal holds each user's daily macro targets.
// A zero field means the target is unset.
type MacroGoal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null"`
	Calories float64 // kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fats     float64 // g
}
