package api

import (
	"net/http"

	authDelivery "notes-backend/internal/auth/delivery"
	noteDelivery "notes-backend/internal/note/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authHandler *authDelivery.AuthHandler, noteHandler *noteDelivery.NoteHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		// Note routes (protected by the gate; handlers re-resolve
		// identity so they also hold up outside it)
		notes := api.Group("/notes")
		{
			notes.GET("", noteHandler.List)
			notes.POST("", noteHandler.Create)
			notes.GET("/:id", noteHandler.GetByID)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}
	}
}
