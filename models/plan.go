package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan is a user's schedule of daily entries. A user may own several
// plans; only the most recently created one is active for streaks.
type Plan struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	Weeks  int
}

// DailyPlanEntry holds one calendar day of a plan. One row per
// (plan, date); dates are stored at UTC midnight.
type DailyPlanEntry struct {
	gorm.Model
	PlanID              uint      `gorm:"uniqueIndex:idx_plan_date;not null"`
	Date                time.Time `gorm:"uniqueIndex:idx_plan_date;not null"`
	IsExerciseDay       bool
	IsExerciseCompleted bool
	IsDietCompleted     bool
}
