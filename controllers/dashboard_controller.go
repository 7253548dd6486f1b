package controllers

import (
	"log"
	"net/http"

	"gymsphere/services"
	"gymsphere/utils"

	"github.com/gin-gonic/gin"
)

func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "GymSphere"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Dashboard returns the summary panel: current streaks, estimated
// days to the target weight, BMI, and today's hydration/sleep. A
// store failure during recompute falls back to the last cached
// streak values instead of failing the whole request.
func Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewStreakService(services.NewPlanStore())
	streaks, err := svc.CalculateStreaks(user)
	if err != nil {
		log.Printf("dashboard: streak recompute failed for user %d: %v", user.ID, err)
		streaks = services.Streaks{Workout: user.WorkoutStreak, Diet: user.DietStreak}
	}

	estimate := services.EstimateTransformationDays(user.WeightKg, user.TargetKg, user.Goal)

	var bmi interface{}
	if user.HeightCm != nil && user.WeightKg != nil {
		if v, err := utils.CalculateBMI(*user.HeightCm, *user.WeightKg); err == nil {
			bmi = gin.H{"value": v, "category": utils.BMICategory(v)}
		}
	}

	summary, err := services.TodaySummary(user.ID)
	if err != nil {
		log.Printf("dashboard: today summary failed for user %d: %v", user.ID, err)
		summary = map[string]interface{}{}
	}

	c.JSON(http.StatusOK, gin.H{
		"workout_streak":      streaks.Workout,
		"diet_streak":         streaks.Diet,
		"transformation_days": estimate,
		"bmi":                 bmi,
		"today":               summary,
	})
}
