package controllers

import (
	"net/http"

	"gymsphere/services"

	"github.com/gin-gonic/gin"
)

func LogWater(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		AmountMl float64 `json:"amount_ml" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.LogWater(user.ID, req.AmountMl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func LogSleep(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Hours float64 `json:"hours" binding:"required,gt=0,lte=24"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.LogSleep(user.ID, req.Hours); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func LogWeight(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.LogWeight(user.ID, req.WeightKg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func GetProgress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := services.WeightHistory(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	labels := make([]string, 0, len(history))
	values := make([]float64, 0, len(history))
	for _, log := range history {
		labels = append(labels, log.LoggedAt.Format("2006-01-02"))
		values = append(values, log.WeightKg)
	}

	summary, err := services.TodaySummary(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weight_labels": labels,
		"weight_values": values,
		"today":         summary,
	})
}
