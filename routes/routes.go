package routes

import (
	"github.com/JamesPraneeth/fitness-tracker/controllers"
	"github.com/JamesPraneeth/fitness-tracker/middlewares"
	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	goalSvc := services.NewGoalService(db)
	authSvc := services.NewAuthService(db, goalSvc)
	userSvc := services.NewUserService(db, goalSvc)
	foodSvc := services.NewFoodService(db)
	workoutSvc := services.NewWorkoutService(db)
	summarySvc := services.NewSummaryService(db)
	coachSvc := services.NewCoachService(db)
	adminSvc := services.NewAdminService(db)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	dashboardCtl := controllers.NewDashboardController(summarySvc, goalSvc, foodSvc, workoutSvc)
	goalCtl := controllers.NewGoalController(goalSvc, summarySvc)
	coachCtl := controllers.NewCoachController(coachSvc, summarySvc)
	adminCtl := controllers.NewAdminController(adminSvc, userSvc, foodSvc, workoutSvc)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/settings", userCtl.UpdateSettings)
		user.POST("/weight", userCtl.LogWeight)
		user.GET("/weight", userCtl.ListWeights)
		user.DELETE("/weight/:id", userCtl.DeleteWeight)
		user.DELETE("", userCtl.DeleteAccount)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", dashboardCtl.Get)
		dashboard.GET("/range", dashboardCtl.GetRange)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("", foodCtl.Log)
		food.GET("", foodCtl.List)
		food.PUT("/:id", foodCtl.Update)
		food.DELETE("/:id", foodCtl.Delete)
	}

	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.POST("/start", workoutCtl.Start)
		workouts.POST("/:id/sets", workoutCtl.AddSet)
		workouts.POST("/:id/finish", workoutCtl.Finish)
		workouts.GET("", workoutCtl.List)
		workouts.DELETE("/:id", workoutCtl.DeleteSession)
		workouts.DELETE("/sets/:id", workoutCtl.DeleteSet)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", goalCtl.Get)
		goals.PUT("", goalCtl.Update)
	}

	coach := r.Group("/coach")
	coach.Use(middlewares.AuthMiddleware())
	{
		coach.GET("/recommendations", coachCtl.Recommendations)
		coach.POST("/ask", coachCtl.Ask)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/overview", adminCtl.Overview)
		admin.GET("/users", adminCtl.ListUsers)
		admin.PUT("/users/:id/admin", adminCtl.SetAdmin)
		admin.DELETE("/users/:id", adminCtl.DeleteUser)
		admin.DELETE("/food/:id", adminCtl.DeleteFoodLog)
		admin.DELETE("/workouts/:id", adminCtl.DeleteWorkout)
	}

	return r
}
