package app

import (
	"chainquest_backend/docs"
	"chainquest_backend/internal/config"
	"chainquest_backend/internal/middleware"
	"chainquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.health.Root)

	// Progress routes accept an optional bearer token: signed-in users act as
	// themselves, everyone else shares the default profile.
	api := router.Group("/api")
	api.Use(middleware.TryAuthMiddleware(cfg))
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/modules", c.content.GetModules)
		api.GET("/modules/:moduleId", c.content.GetModule)
		api.GET("/lessons/:lessonId", c.content.GetLesson)
		api.POST("/lessons/:lessonId/complete", c.progress.CompleteLesson)
		api.POST("/quiz/submit", c.progress.SubmitQuiz)

		api.GET("/adventures", c.adventure.GetAdventures)
		api.GET("/adventures/:chapterId", c.adventure.GetAdventure)
		api.POST("/adventures/:chapterId/answer", c.adventure.AnswerChallenge)

		api.GET("/user/stats", c.progress.GetUserStats)

		api.POST("/chat", c.chat.Chat)
		api.POST("/explainer/record", c.progress.RecordExplanation)
		api.POST("/modules/generate", c.chat.GenerateModule)
	}

	auth := router.Group("/api/auth")
	{
		auth.GET("/google", c.auth.GoogleAuthURL)
		auth.GET("/google/callback", c.auth.GoogleCallbackRedirect)
		auth.POST("/google/callback", c.auth.GoogleCallback)
		auth.POST("/logout", c.auth.Logout)

		auth.GET("/me", middleware.AuthMiddleware(cfg), c.auth.Me)
	}
}
