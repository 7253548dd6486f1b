package services

import (
	"testing"
	"time"

	"gymsphere/models"
)

var testToday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func floatPtr(f float64) *float64 { return &f }

// entry builds a DailyPlanEntry dated daysAgo days before testToday.
func entry(daysAgo int, exerciseDay, exerciseDone, dietDone bool) models.DailyPlanEntry {
	return models.DailyPlanEntry{
		Date:                testToday.AddDate(0, 0, -daysAgo),
		IsExerciseDay:       exerciseDay,
		IsExerciseCompleted: exerciseDone,
		IsDietCompleted:     dietDone,
	}
}

type fakeStore struct {
	user    *models.User
	plan    *models.Plan
	entries []models.DailyPlanEntry

	saves           int
	lastEntriesPlan uint
}

func (f *fakeStore) UserByID(id uint) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, nil
	}
	return f.user, nil
}

func (f *fakeStore) LatestPlan(userID uint) (*models.Plan, error) {
	return f.plan, nil
}

func (f *fakeStore) EntriesThrough(planID uint, day time.Time) ([]models.DailyPlanEntry, error) {
	f.lastEntriesPlan = planID
	return f.entries, nil
}

func (f *fakeStore) SaveStreaks(user *models.User) error {
	f.saves++
	return nil
}

func newTestService(store *fakeStore) *StreakService {
	return &StreakService{store: store, now: func() time.Time { return testToday }}
}

func TestEstimateTransformationDays(t *testing.T) {
	tests := []struct {
		name   string
		weight *float64
		target *float64
		goal   string
		want   int
	}{
		{"missing weight", nil, floatPtr(70), "fat_loss", 0},
		{"missing target", floatPtr(80), nil, "fat_loss", 0},
		{"already at goal", floatPtr(70), floatPtr(70.05), "fat_loss", 0},
		// 10 kg at 0.55/week = 18.18 weeks = 127.27 days, truncated
		{"fat loss 10kg", floatPtr(80), floatPtr(70), "fat_loss", 127},
		{"goal is case-insensitive", floatPtr(80), floatPtr(70), "FAT_LOSS", 127},
		{"lose alias", floatPtr(80), floatPtr(70), "lose", 127},
		// 5 kg at 0.3/week = 16.67 weeks = 116.67 days
		{"muscle gain", floatPtr(70), floatPtr(75), "bulk", 116},
		// 3 kg at 0.2/week = 15 weeks
		{"recomposition", floatPtr(70), floatPtr(73), "recomp", 105},
		// 10 kg at the 0.4 default = 25 weeks
		{"unknown goal uses default rate", floatPtr(80), floatPtr(70), "get_shredded", 175},
		{"empty goal uses default rate", floatPtr(80), floatPtr(70), "", 175},
		// 0.5 kg at 0.55/week = 6.36 days, floored to a week
		{"never less than a week", floatPtr(70), floatPtr(70.5), "fat_loss", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTransformationDays(tt.weight, tt.target, tt.goal)
			if got != tt.want {
				t.Errorf("EstimateTransformationDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateTransformationDaysMonotonic(t *testing.T) {
	prev := 0
	for delta := 0.5; delta <= 30; delta += 0.5 {
		target := 70 + delta
		got := EstimateTransformationDays(floatPtr(70), &target, "fat_loss")
		if got < prev {
			t.Fatalf("estimate decreased: delta %.1f gave %d days, previous was %d", delta, got, prev)
		}
		prev = got
	}
}

func TestCalculateStreaks(t *testing.T) {
	tests := []struct {
		name        string
		user        *models.User
		plan        *models.Plan
		entries     []models.DailyPlanEntry
		wantWorkout int
		wantDiet    int
		wantSaves   int
	}{
		{
			name: "nil user",
			user: nil,
		},
		{
			name: "user without plan",
			user: &models.User{},
		},
		{
			name: "plan without entries",
			user: &models.User{},
			plan: &models.Plan{},
		},
		{
			name: "today pending does not break workout streak",
			user: &models.User{},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(0, true, false, false), // today's session not done yet
				entry(1, false, false, false),
				entry(2, true, true, false),
			},
			wantWorkout: 2,
			wantDiet:    0,
			wantSaves:   1,
		},
		{
			name: "today counts when completed",
			user: &models.User{},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(0, true, true, true),
				entry(1, false, false, true),
				entry(2, true, true, true),
			},
			wantWorkout: 3,
			wantDiet:    3,
			wantSaves:   1,
		},
		{
			name: "incomplete diet today is skipped, older miss breaks",
			user: &models.User{},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(0, false, false, false),
				entry(1, false, false, true),
				entry(2, false, false, false),
				entry(3, false, false, true),
			},
			wantWorkout: 4, // all rest days
			wantDiet:    1,
			wantSaves:   1,
		},
		{
			name: "missed exercise day in the past breaks",
			user: &models.User{},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(0, true, true, true),
				entry(1, true, false, true),
				entry(2, true, true, true),
			},
			wantWorkout: 1,
			wantDiet:    3,
			wantSaves:   1,
		},
		{
			name: "calendar gap breaks both streaks",
			user: &models.User{},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(0, true, true, true),
				entry(1, true, true, true),
				// day 2 missing entirely
				entry(3, true, true, true),
			},
			wantWorkout: 2,
			wantDiet:    2,
			wantSaves:   1,
		},
		{
			name: "no entry for today, chain runs from yesterday",
			user: &models.User{},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(1, true, true, true),
				entry(2, false, false, true),
			},
			wantWorkout: 2,
			wantDiet:    2,
			wantSaves:   1,
		},
		{
			name: "stale newest entry yields zero streaks",
			user: &models.User{WorkoutStreak: 4, DietStreak: 4},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(3, true, true, true),
				entry(4, true, true, true),
			},
			wantWorkout: 0,
			wantDiet:    0,
			wantSaves:   1, // cache held 4/4 and must be reset
		},
		{
			name: "unchanged counts skip the write",
			user: &models.User{WorkoutStreak: 2, DietStreak: 2},
			plan: &models.Plan{},
			entries: []models.DailyPlanEntry{
				entry(0, true, true, true),
				entry(1, false, false, true),
			},
			wantWorkout: 2,
			wantDiet:    2,
			wantSaves:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{user: tt.user, plan: tt.plan, entries: tt.entries}
			svc := newTestService(store)

			got, err := svc.CalculateStreaks(tt.user)
			if err != nil {
				t.Fatalf("CalculateStreaks() error = %v", err)
			}
			if got.Workout != tt.wantWorkout {
				t.Errorf("workout streak = %d, want %d", got.Workout, tt.wantWorkout)
			}
			if got.Diet != tt.wantDiet {
				t.Errorf("diet streak = %d, want %d", got.Diet, tt.wantDiet)
			}
			if store.saves != tt.wantSaves {
				t.Errorf("SaveStreaks calls = %d, want %d", store.saves, tt.wantSaves)
			}
			if tt.user != nil && tt.wantSaves > 0 {
				if tt.user.WorkoutStreak != tt.wantWorkout || tt.user.DietStreak != tt.wantDiet {
					t.Errorf("cached columns = %d/%d, want %d/%d",
						tt.user.WorkoutStreak, tt.user.DietStreak, tt.wantWorkout, tt.wantDiet)
				}
			}
		})
	}
}

func TestCalculateStreaksAnchorsOnUTCDay(t *testing.T) {
	// 01:00 on March 11 in UTC+2 is still March 10 in UTC. The scan
	// must treat the March 10 entry as "today" (pending), not as a
	// broken yesterday.
	zone := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2025, time.March, 11, 1, 0, 0, 0, zone)

	user := &models.User{}
	store := &fakeStore{
		user: user,
		plan: &models.Plan{},
		entries: []models.DailyPlanEntry{
			entry(0, true, false, true),  // March 10, workout pending
			entry(1, false, false, true), // March 9, rest day
		},
	}
	svc := &StreakService{store: store, now: func() time.Time { return now }}

	got, err := svc.CalculateStreaks(user)
	if err != nil {
		t.Fatalf("CalculateStreaks() error = %v", err)
	}
	if got.Workout != 1 {
		t.Errorf("workout streak = %d, want 1 (local calendar day must not shift the anchor)", got.Workout)
	}
	if got.Diet != 2 {
		t.Errorf("diet streak = %d, want 2", got.Diet)
	}
}

func TestCalculateStreaksIdempotent(t *testing.T) {
	user := &models.User{}
	store := &fakeStore{
		user: user,
		plan: &models.Plan{},
		entries: []models.DailyPlanEntry{
			entry(0, true, true, true),
			entry(1, true, true, true),
		},
	}
	svc := newTestService(store)

	first, err := svc.CalculateStreaks(user)
	if err != nil {
		t.Fatalf("first CalculateStreaks() error = %v", err)
	}
	second, err := svc.CalculateStreaks(user)
	if err != nil {
		t.Fatalf("second CalculateStreaks() error = %v", err)
	}

	if first != second {
		t.Errorf("results differ across calls: %+v vs %+v", first, second)
	}
	if store.saves != 1 {
		t.Errorf("SaveStreaks calls = %d, want 1 (second call must be a no-op)", store.saves)
	}
}

func TestComputeStreaks(t *testing.T) {
	user := &models.User{}
	user.ID = 42
	store := &fakeStore{
		user: user,
		plan: &models.Plan{},
		entries: []models.DailyPlanEntry{
			entry(0, false, false, true),
			entry(1, false, false, true),
		},
	}
	store.plan.ID = 7
	svc := newTestService(store)

	// planID 99 must be ignored; the latest plan (7) is re-resolved.
	got, err := svc.ComputeStreaks(42, 99)
	if err != nil {
		t.Fatalf("ComputeStreaks() error = %v", err)
	}
	if got.Workout != 2 || got.Diet != 2 {
		t.Errorf("ComputeStreaks() = %+v, want {2 2}", got)
	}
	if store.lastEntriesPlan != 7 {
		t.Errorf("entries queried for plan %d, want latest plan 7", store.lastEntriesPlan)
	}

	got, err = svc.ComputeStreaks(1000, 0)
	if err != nil {
		t.Fatalf("ComputeStreaks() unknown user error = %v", err)
	}
	if got.Workout != 0 || got.Diet != 0 {
		t.Errorf("ComputeStreaks() for unknown user = %+v, want zeroes", got)
	}
}
