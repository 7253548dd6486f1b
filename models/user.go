package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	FullName     string
	HeightCm     *float64
	WeightKg     *float64
	TargetKg     *float64
	Goal         string // fat_loss, muscle_gain, recomposition, ...
	FitnessLevel string
	FreqPerWeek  int // scheduled workout days per week

	// Cached streak counters, owned by the streak service. Always
	// recomputable from the daily plan entries.
	WorkoutStreak int
	DietStreak    int

	ResetToken string
}
