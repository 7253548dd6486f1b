package services

import (
	"errors"
	"time"

	"gymsphere/config"
	"gymsphere/models"

	"gorm.io/gorm"
)

var ErrNoPlan = errors.New("user has no plan")

// exercisePreference orders weekdays by how early a plan generator
// schedules them, so freq 3 lands on Mon/Wed/Fri.
var exercisePreference = []time.Weekday{
	time.Monday, time.Wednesday, time.Friday,
	time.Tuesday, time.Thursday, time.Saturday, time.Sunday,
}

func exerciseWeekdays(freqPerWeek int) map[time.Weekday]bool {
	if freqPerWeek > len(exercisePreference) {
		freqPerWeek = len(exercisePreference)
	}
	days := make(map[time.Weekday]bool, freqPerWeek)
	for _, wd := range exercisePreference[:freqPerWeek] {
		days[wd] = true
	}
	return days
}

// CreatePlan creates a new plan for the user starting today, with one
// entry per calendar day for the given number of weeks. The new plan
// becomes the active one for streak purposes.
func CreatePlan(userID uint, freqPerWeek, weeks int) (*models.Plan, error) {
	if weeks <= 0 {
		weeks = 4
	}
	if freqPerWeek <= 0 {
		freqPerWeek = 3
	}

	plan := models.Plan{UserID: userID, Weeks: weeks}
	if err := config.DB.Create(&plan).Error; err != nil {
		return nil, err
	}

	schedule := exerciseWeekdays(freqPerWeek)
	start := dateOnly(time.Now().UTC())

	entries := make([]models.DailyPlanEntry, 0, weeks*7)
	for i := 0; i < weeks*7; i++ {
		day := start.AddDate(0, 0, i)
		entries = append(entries, models.DailyPlanEntry{
			PlanID:        plan.ID,
			Date:          day,
			IsExerciseDay: schedule[day.Weekday()],
		})
	}
	if err := config.DB.Create(&entries).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// LatestPlanWithEntries returns the active plan and all of its
// entries in ascending date order, for rendering the schedule.
func LatestPlanWithEntries(userID uint) (*models.Plan, []models.DailyPlanEntry, error) {
	plan, err := NewPlanStore().LatestPlan(userID)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, ErrNoPlan
	}

	var entries []models.DailyPlanEntry
	err = config.DB.
		Where("plan_id = ?", plan.ID).
		Order("date asc").
		Find(&entries).Error
	return plan, entries, err
}

func todayEntry(planID uint) (*models.DailyPlanEntry, error) {
	today := dateOnly(time.Now().UTC())

	var entry models.DailyPlanEntry
	err := config.DB.
		Where("plan_id = ? AND date = ?", planID, today).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Plan generated before today ran out; extend it in place.
		entry = models.DailyPlanEntry{PlanID: planID, Date: today}
		return &entry, config.DB.Create(&entry).Error
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CompleteExercise marks today's workout done on the user's active
// plan.
func CompleteExercise(userID uint) (*models.DailyPlanEntry, error) {
	return completeToday(userID, func(e *models.DailyPlanEntry) {
		e.IsExerciseCompleted = true
	})
}

// CompleteDiet marks today's diet adherence on the user's active
// plan.
func CompleteDiet(userID uint) (*models.DailyPlanEntry, error) {
	return completeToday(userID, func(e *models.DailyPlanEntry) {
		e.IsDietCompleted = true
	})
}

func completeToday(userID uint, mark func(*models.DailyPlanEntry)) (*models.DailyPlanEntry, error) {
	plan, err := NewPlanStore().LatestPlan(userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNoPlan
	}

	entry, err := todayEntry(plan.ID)
	if err != nil {
		return nil, err
	}
	mark(entry)
	return entry, config.DB.Save(entry).Error
}
