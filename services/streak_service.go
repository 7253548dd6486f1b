package services

import (
	"math"
	"strings"
	"time"

	"gymsphere/models"
)

// weeklyRates maps a normalized goal string to an expected rate of
// change in kg/week. Unknown goals fall back to defaultWeeklyRate.
var weeklyRates = map[string]float64{
	// fat loss: 0.4-0.7 kg/week, use the middle
	"fat_loss":    0.55,
	"lose":        0.55,
	"weight_loss": 0.55,
	// muscle gain: 0.2-0.4 kg/week
	"muscle_gain": 0.3,
	"gain":        0.3,
	"bulk":        0.3,
	// recomposition moves the scale slowest
	"recomposition": 0.2,
	"recomp":        0.2,
}

const defaultWeeklyRate = 0.4

// EstimateTransformationDays estimates how many days a user needs to
// move from their current weight to their target, given a goal
// category. Missing weights or a delta under 0.1 kg return 0; any
// real transformation is at least a week. Days are truncated, not
// rounded.
func EstimateTransformationDays(weightKg, targetKg *float64, goal string) int {
	if weightKg == nil || targetKg == nil {
		return 0
	}

	kgToChange := math.Abs(*targetKg - *weightKg)
	if kgToChange < 0.1 {
		return 0
	}

	rate, ok := weeklyRates[strings.ToLower(goal)]
	if !ok {
		rate = defaultWeeklyRate
	}

	days := int(kgToChange / rate * 7)
	if days < 7 {
		days = 7
	}
	return days
}

// Streaks holds the two consecutive-day counters shown on the
// dashboard.
type Streaks struct {
	Workout int `json:"workout"`
	Diet    int `json:"diet"`
}

type StreakService struct {
	store PlanStore
	now   func() time.Time
}

func NewStreakService(store PlanStore) *StreakService {
	return &StreakService{store: store, now: time.Now}
}

type dayOutcome int

const (
	dayCounts dayOutcome = iota
	dayPending
	dayBreaks
)

// classifyWorkout: a rest day always counts, a completed exercise day
// counts, and today's not-yet-completed exercise day is pending
// rather than a break. Any older missed exercise day breaks.
func classifyWorkout(e models.DailyPlanEntry, isToday bool) dayOutcome {
	if !e.IsExerciseDay || e.IsExerciseCompleted {
		return dayCounts
	}
	if isToday {
		return dayPending
	}
	return dayBreaks
}

// classifyDiet: diet must be completed every day; today is pending
// until checked in.
func classifyDiet(e models.DailyPlanEntry, isToday bool) dayOutcome {
	if e.IsDietCompleted {
		return dayCounts
	}
	if isToday {
		return dayPending
	}
	return dayBreaks
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// scanStreak walks the entries newest-first and counts consecutive
// qualifying days. The chain is anchored at today: the newest entry
// must be dated today or yesterday, and every step back must land on
// the preceding calendar day. A missing day breaks the streak no
// matter what the completion flags say.
func scanStreak(entries []models.DailyPlanEntry, today time.Time, classify func(models.DailyPlanEntry, bool) dayOutcome) int {
	streak := 0
	expected := today

	for i, e := range entries {
		d := dateOnly(e.Date)
		if !d.Equal(expected) {
			// No entry for today yet; the chain may still run
			// through yesterday.
			if i == 0 && d.Equal(today.AddDate(0, 0, -1)) {
				expected = d
			} else {
				break
			}
		}

		switch classify(e, d.Equal(today)) {
		case dayCounts:
			streak++
		case dayPending:
			// skipped, not broken
		case dayBreaks:
			return streak
		}
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// CalculateStreaks recomputes the user's workout and diet streaks
// from the entries of their latest plan and writes the cached columns
// back when either changed. A nil user, a user without a plan, or a
// plan without entries all yield zero streaks with no write.
func (s *StreakService) CalculateStreaks(user *models.User) (Streaks, error) {
	if user == nil {
		return Streaks{}, nil
	}

	plan, err := s.store.LatestPlan(user.ID)
	if err != nil {
		return Streaks{}, err
	}
	if plan == nil {
		return Streaks{}, nil
	}

	today := dateOnly(s.now().UTC())
	entries, err := s.store.EntriesThrough(plan.ID, today)
	if err != nil {
		return Streaks{}, err
	}
	if len(entries) == 0 {
		return Streaks{}, nil
	}

	result := Streaks{
		Workout: scanStreak(entries, today, classifyWorkout),
		Diet:    scanStreak(entries, today, classifyDiet),
	}

	if result.Workout != user.WorkoutStreak || result.Diet != user.DietStreak {
		user.WorkoutStreak = result.Workout
		user.DietStreak = result.Diet
		if err := s.store.SaveStreaks(user); err != nil {
			return result, err
		}
	}
	return result, nil
}

// ComputeStreaks looks the user up by id and recomputes their
// streaks.
//
// Deprecated: planID is accepted for callers of the old signature but
// ignored; the latest plan is always re-resolved. Use
// CalculateStreaks directly.
func (s *StreakService) ComputeStreaks(userID, planID uint) (Streaks, error) {
	user, err := s.store.UserByID(userID)
	if err != nil {
		return Streaks{}, err
	}
	return s.CalculateStreaks(user)
}
