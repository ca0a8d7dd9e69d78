package router

import (
	"buildboard/internal/handlers"
	"buildboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	profileHandler := handlers.NewProfileHandler()
	projectHandler := handlers.NewProjectHandler()
	voteHandler := handlers.NewVoteHandler()
	feedbackHandler := handlers.NewFeedbackHandler()
	notificationHandler := handlers.NewNotificationHandler()
	builderHandler := handlers.NewBuilderHandler()

	// Public Routes
	r.POST("/signup", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	r.GET("/api/projects", projectHandler.List)
	r.GET("/api/projects/:pid", projectHandler.Detail)
	r.GET("/api/projects/:pid/feedback", feedbackHandler.Tree)
	r.GET("/api/builders", builderHandler.Top)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected Routes
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/profile", profileHandler.Get)
		authorized.POST("/profile", profileHandler.Update)

		authorized.POST("/projects", projectHandler.Create)
		authorized.PATCH("/projects/:pid", projectHandler.Update)
		authorized.DELETE("/projects/:pid", projectHandler.Delete)
		authorized.POST("/projects/:pid/vote", voteHandler.Toggle)
		authorized.POST("/projects/:pid/feedback", feedbackHandler.Create)

		// Editorial overrides (admin only, enforced in the service)
		authorized.POST("/projects/:pid/pin", projectHandler.Pin)
		authorized.POST("/projects/:pid/top", projectHandler.Top)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.PATCH("/notifications/read-all", notificationHandler.ReadAll)
	}
}
