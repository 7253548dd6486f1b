package controllers

import (
	"net/http"

	"gymsphere/config"
	"gymsphere/models"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	userID := c.MustGet("userID").(uint)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return &user, true
}

func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":          user.Email,
		"full_name":      user.FullName,
		"height_cm":      user.HeightCm,
		"weight_kg":      user.WeightKg,
		"target_kg":      user.TargetKg,
		"goal":           user.Goal,
		"fitness_level":  user.FitnessLevel,
		"freq_per_week":  user.FreqPerWeek,
		"workout_streak": user.WorkoutStreak,
		"diet_streak":    user.DietStreak,
	})
}

func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		FullName     *string  `json:"full_name"`
		HeightCm     *float64 `json:"height_cm"`
		WeightKg     *float64 `json:"weight_kg"`
		TargetKg     *float64 `json:"target_kg"`
		Goal         *string  `json:"goal"`
		FitnessLevel *string  `json:"fitness_level"`
		FreqPerWeek  *int     `json:"freq_per_week"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.HeightCm != nil {
		user.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.TargetKg != nil {
		user.TargetKg = req.TargetKg
	}
	if req.Goal != nil {
		user.Goal = *req.Goal
	}
	if req.FitnessLevel != nil {
		user.FitnessLevel = *req.FitnessLevel
	}
	if req.FreqPerWeek != nil {
		user.FreqPerWeek = *req.FreqPerWeek
	}

	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
