package api

import (
	authDelivery "notes-backend/internal/auth/delivery"
	"notes-backend/internal/auth/token"
	authUsecase "notes-backend/internal/auth/usecase"
	noteDelivery "notes-backend/internal/note/delivery"
	noteUsecase "notes-backend/internal/note/usecase"
	"notes-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authHandler *authDelivery.AuthHandler
	noteHandler *noteDelivery.NoteHandler
	tokens      *token.Service
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, noteUc noteUsecase.NoteUsecase, resolver *authDelivery.IdentityResolver, tokens *token.Service, cfg *config.Config) *Handler {
	return &Handler{
		authHandler: authDelivery.NewAuthHandler(authUc, resolver, cfg),
		noteHandler: noteDelivery.NewNoteHandler(noteUc, resolver),
		tokens:      tokens,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Request gate: the only path-matcher configuration in the process.
	r.Use(authDelivery.Gate(authDelivery.DefaultGateConfig(), h.tokens))

	SetupRoutes(r, h.authHandler, h.noteHandler)

	return r.Run(addr)
}
