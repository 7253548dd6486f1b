package services

import (
	"errors"
	"time"

	"gymsphere/config"
	"gymsphere/models"

	"gorm.io/gorm"
)

// PlanStore is the slice of the database the streak service reads and
// writes. Kept behind an interface so the scan logic is testable
// without a live database.
type PlanStore interface {
	// UserByID returns nil, nil when no such user exists.
	UserByID(id uint) (*models.User, error)
	// LatestPlan returns the most recently created plan for the user,
	// or nil, nil when the user has no plan.
	LatestPlan(userID uint) (*models.Plan, error)
	// EntriesThrough returns the plan's entries with date <= day,
	// newest first.
	EntriesThrough(planID uint, day time.Time) ([]models.DailyPlanEntry, error)
	// SaveStreaks persists the user's cached streak columns.
	SaveStreaks(user *models.User) error
}

type gormPlanStore struct{}

// NewPlanStore returns the config.DB-backed store.
func NewPlanStore() PlanStore {
	return gormPlanStore{}
}

func (gormPlanStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (gormPlanStore) LatestPlan(userID uint) (*models.Plan, error) {
	var plan models.Plan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (gormPlanStore) EntriesThrough(planID uint, day time.Time) ([]models.DailyPlanEntry, error) {
	var entries []models.DailyPlanEntry
	err := config.DB.
		Where("plan_id = ? AND date <= ?", planID, day).
		Order("date desc").
		Find(&entries).Error
	return entries, err
}

func (gormPlanStore) SaveStreaks(user *models.User) error {
	return config.DB.Model(user).
		Select("workout_streak", "diet_streak").
		Updates(map[string]interface{}{
			"workout_streak": user.WorkoutStreak,
			"diet_streak":    user.DietStreak,
		}).Error
}
