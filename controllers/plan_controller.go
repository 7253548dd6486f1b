package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"gymsphere/services"

	"github.com/gin-gonic/gin"
)

func CreatePlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Weeks       int `json:"weeks"`
		FreqPerWeek int `json:"freq_per_week"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	freq := req.FreqPerWeek
	if freq == 0 {
		freq = user.FreqPerWeek
	}

	plan, err := services.CreatePlan(user.ID, freq, req.Weeks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan_id": plan.ID, "weeks": plan.Weeks})
}

func GetPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	plan, entries, err := services.LatestPlanWithEntries(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoPlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	days := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		days = append(days, gin.H{
			"date":                  e.Date.Format("2006-01-02"),
			"is_exercise_day":       e.IsExerciseDay,
			"is_exercise_completed": e.IsExerciseCompleted,
			"is_diet_completed":     e.IsDietCompleted,
		})
	}
	c.JSON(http.StatusOK, gin.H{"plan_id": plan.ID, "days": days})
}

func checkIn(c *gin.Context, complete func(uint) (interface{}, error)) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if _, err := complete(user.ID); err != nil {
		if errors.Is(err, services.ErrNoPlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Refresh the cached counters right away so the response carries
	// the new streaks.
	svc := services.NewStreakService(services.NewPlanStore())
	streaks, err := svc.CalculateStreaks(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streaks": streaks})
}

func CompleteExercise(c *gin.Context) {
	checkIn(c, func(id uint) (interface{}, error) {
		return services.CompleteExercise(id)
	})
}

func CompleteDiet(c *gin.Context) {
	checkIn(c, func(id uint) (interface{}, error) {
		return services.CompleteDiet(id)
	})
}

// GetStreaks serves the legacy streak endpoint. The plan_id query
// parameter is still accepted but ignored; the latest plan is always
// used.
func GetStreaks(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	planID, _ := strconv.ParseUint(c.Query("plan_id"), 10, 64)

	svc := services.NewStreakService(services.NewPlanStore())
	streaks, err := svc.ComputeStreaks(userID, uint(planID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, streaks)
}
