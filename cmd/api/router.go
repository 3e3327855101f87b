package main

import (
	"net/http"

	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	optionalAuth := middleware.OptionalAuth(c.JWTManager)
	requireAuth := middleware.RequireAuth(c.JWTManager, c.Config.App.LoginURL)

	router.GET("/health", healthCheckHandler(c))

	// Listing and detail pages: anonymous viewers welcome, the viewer
	// identity only widens what they see.
	router.GET("/", optionalAuth, c.PostHandler.Index)
	router.GET("/category/:slug", optionalAuth, c.PostHandler.CategoryFeed)
	router.GET("/profile/:username", optionalAuth, c.PostHandler.Profile)

	posts := router.Group("/posts")
	{
		posts.GET("/:post_id", optionalAuth, c.PostHandler.Detail)

		posts.POST("", requireAuth, c.PostHandler.Create)
		posts.PUT("/:post_id", requireAuth, c.PostHandler.Update)
		posts.DELETE("/:post_id", requireAuth, c.PostHandler.Delete)

		posts.POST("/:post_id/comments", requireAuth, c.CommentHandler.Create)
		posts.PUT("/:post_id/comments/:comment_id", requireAuth, c.CommentHandler.Update)
		posts.DELETE("/:post_id/comments/:comment_id", requireAuth, c.CommentHandler.Delete)
	}

	// Profile edit has no target id; the viewer is always the target.
	router.PUT("/profile", requireAuth, c.UserHandler.UpdateProfile)

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
