package models

import (
	"time"

	"gorm.io/gorm"
)

// One workout session (gym visit). Sets are added one by one while the
// session is open, then EndTime/DurationSec are filled on finish.
type WorkoutSession struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	Date        time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
	StartTime   time.Time `gorm:"not null"`
	EndTime     *time.Time
	DurationSec int
	Sets        []ExerciseSet `gorm:"constraint:OnDelete:CASCADE"`
}

type ExerciseSet struct {
	gorm.Model
	WorkoutSessionID uint   `gorm:"index;not null"`
	ExerciseName     string `gorm:"not null"`
	Weight           float64
	Reps             int
	SetNumber        int
}
