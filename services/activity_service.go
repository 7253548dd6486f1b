package services

import (
	"errors"
	"time"

	"gymsphere/config"
	"gymsphere/models"

	"gorm.io/gorm"
)

const hydrationGoalMl = 3000

// LogWater appends a water intake entry for today. Multiple entries
// per day are expected; the summary sums them.
func LogWater(userID uint, amountMl float64) error {
	log := models.WaterLog{
		UserID:   userID,
		Date:     dateOnly(time.Now().UTC()),
		AmountMl: amountMl,
	}
	return config.DB.Create(&log).Error
}

// LogSleep upserts today's sleep duration. One row per (user, day).
func LogSleep(userID uint, hours float64) error {
	today := dateOnly(time.Now().UTC())

	var log models.SleepLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log = models.SleepLog{UserID: userID, Date: today, Hours: hours}
		return config.DB.Create(&log).Error
	}
	if err != nil {
		return err
	}

	log.Hours = hours
	return config.DB.Save(&log).Error
}

// LogWeight appends a weigh-in and moves the user's current weight
// forward with it.
func LogWeight(userID uint, weightKg float64) error {
	log := models.ProgressLog{
		UserID:   userID,
		LoggedAt: time.Now().UTC(),
		WeightKg: weightKg,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return err
	}
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("weight_kg", weightKg).Error
}

// WeightHistory returns all weigh-ins oldest first, for charting.
func WeightHistory(userID uint) ([]models.ProgressLog, error) {
	var logs []models.ProgressLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at asc").
		Find(&logs).Error
	return logs, err
}

// TodaySummary reports today's hydration total against the fixed
// goal plus the logged sleep, zero-valued when nothing was logged.
func TodaySummary(userID uint) (map[string]interface{}, error) {
	today := dateOnly(time.Now().UTC())

	var waterLogs []models.WaterLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		Find(&waterLogs).Error
	if err != nil {
		return nil, err
	}

	var hydration float64
	for _, w := range waterLogs {
		hydration += w.AmountMl
	}

	var sleep models.SleepLog
	err = config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		First(&sleep).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return map[string]interface{}{
		"hydration": map[string]float64{
			"consumed": hydration,
			"goal":     hydrationGoalMl,
			"percent":  pct(hydration, hydrationGoalMl),
		},
		"sleep_hours": sleep.Hours,
	}, nil
}
