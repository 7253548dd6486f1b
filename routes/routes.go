package routes

import (
	"gymsphere/controllers"
	"gymsphere/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Health probes
	r.GET("/_status", controllers.Status)
	r.GET("/_health", controllers.Health)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/password-reset", controllers.RequestPasswordReset)
		auth.POST("/password-reset/confirm", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/dashboard", controllers.Dashboard)
	}

	plan := r.Group("/plan")
	plan.Use(middlewares.AuthMiddleware())
	{
		plan.POST("", controllers.CreatePlan)
		plan.GET("", controllers.GetPlan)
		plan.POST("/checkin/exercise", controllers.CompleteExercise)
		plan.POST("/checkin/diet", controllers.CompleteDiet)
		plan.GET("/streaks", controllers.GetStreaks)
	}

	activity := r.Group("/activity")
	activity.Use(middlewares.AuthMiddleware())
	{
		activity.POST("/water", controllers.LogWater)
		activity.POST("/sleep", controllers.LogSleep)
		activity.POST("/weight", controllers.LogWeight)
		activity.GET("/progress", controllers.GetProgress)
	}

	return r
}
