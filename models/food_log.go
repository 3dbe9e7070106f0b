package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged food item. Nutrition values are totals for the logged portion.
type FoodLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
	Name     string    `gorm:"not null"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}
