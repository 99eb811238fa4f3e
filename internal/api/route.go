package api

import (
	"TrainerHub/internal/api/middleware"
	"TrainerHub/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			// 无需登录即可访问的接口
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/password/forgot", group.AuthHandler.ForgotPassword)
			authGroup.PUT("/password/reset", group.AuthHandler.ResetPassword)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.GET("/user", group.AuthHandler.GetCoachInfo)
				loggedGroup.PUT("/password", group.AuthHandler.ChangePassword)
			}
		}

		clientGroup := apiGroup.Group("/clients")
		clientGroup.Use(middleware.AuthMiddleware())
		{
			clientGroup.GET("", group.ClientHandler.ListClients)
			clientGroup.POST("", group.ClientHandler.CreateClient)
			clientGroup.GET("/:client_id", group.ClientHandler.GetClient)
			clientGroup.PATCH("/:client_id", group.ClientHandler.UpdateClient)
			clientGroup.DELETE("/:client_id", group.ClientHandler.DeleteClient)

			clientGroup.GET("/:client_id/metrics", group.MetricHandler.GetClientMetrics)
			clientGroup.POST("/:client_id/metrics", group.MetricHandler.SavePreferences)
			clientGroup.POST("/:client_id/metrics/:metric_id", group.MetricHandler.AddMetricValue)
		}

		metricsGroup := apiGroup.Group("/metrics")
		metricsGroup.Use(middleware.AuthMiddleware())
		{
			metricsGroup.GET("/definitions", group.MetricHandler.GetDefinitions)
		}

		exerciseGroup := apiGroup.Group("/exercises")
		exerciseGroup.Use(middleware.AuthMiddleware())
		{
			exerciseGroup.GET("", group.ExerciseHandler.ListExercises)
			exerciseGroup.POST("", group.ExerciseHandler.CreateExercise)
			exerciseGroup.GET("/body-parts", group.ExerciseHandler.ListBodyParts)
			exerciseGroup.GET("/muscle-groups", group.ExerciseHandler.ListMuscleGroups)
			exerciseGroup.GET("/equipment", group.ExerciseHandler.ListEquipment)
			exerciseGroup.GET("/:exercise_id", group.ExerciseHandler.GetExercise)
			exerciseGroup.PATCH("/:exercise_id", group.ExerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:exercise_id", group.ExerciseHandler.DeleteExercise)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
