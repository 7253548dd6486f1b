package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressLog is one weigh-in. Kept append-only for charting.
type ProgressLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	LoggedAt time.Time `gorm:"index;not null"`
	WeightKg float64
}

type WaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
	AmountMl float64
}

type SleepLog struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`
	Hours  float64
}
