package delivery

import (
	"net/http"
	"strings"

	"notes-backend/internal/auth/token"
	"notes-backend/pkg/apperr"
	"notes-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"

	HeaderUserID    = "x-user-id"
	HeaderUserAdmin = "x-user-admin"

	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
)

// GateConfig is the single authoritative description of which paths the
// gate enforces. Routes outside it receive no enforcement from the
// gate; the handler-level identity fallback covers those.
type GateConfig struct {
	// ProtectedExact paths are enforced on exact match.
	ProtectedExact []string
	// ProtectedPrefixes are enforced on prefix match.
	ProtectedPrefixes []string
	// PublicPrefixes bypass the gate entirely and are checked first.
	PublicPrefixes []string
	// LoginPath is where unauthorized page navigations are sent.
	LoginPath string
}

func DefaultGateConfig() GateConfig {
	return GateConfig{
		ProtectedExact: []string{"/", "/api/auth/logout"},
		ProtectedPrefixes: []string{
			"/notes",
			"/api/notes",
		},
		PublicPrefixes: []string{
			"/api/auth/register",
			"/api/auth/login",
			"/api/auth/refresh",
			"/api/auth/me",
			"/api/health",
			"/static",
			"/assets",
			"/favicon",
		},
		LoginPath: "/auth/login",
	}
}

func (cfg GateConfig) protects(path string) bool {
	for _, prefix := range cfg.PublicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	for _, exact := range cfg.ProtectedExact {
		if path == exact {
			return true
		}
	}
	for _, prefix := range cfg.ProtectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Gate verifies the access token cookie on protected paths and forwards
// the derived identity in request headers, so downstream handlers do
// not re-verify. API callers get an enveloped 401; page navigations are
// redirected to the login page.
func Gate(cfg GateConfig, tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.protects(c.Request.URL.Path) {
			c.Next()
			return
		}

		tokenString, err := c.Cookie(CookieAccessToken)
		if err != nil || tokenString == "" {
			unauthorized(c, cfg, "Unauthorized: No token provided")
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			unauthorized(c, cfg, "Unauthorized: Invalid or expired token")
			return
		}

		admin := "false"
		if claims.IsAdmin {
			admin = "true"
		}
		c.Request.Header.Set(HeaderUserID, claims.Subject)
		c.Request.Header.Set(HeaderUserAdmin, admin)
		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

func unauthorized(c *gin.Context, cfg GateConfig, message string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		response.AbortError(c, apperr.Unauthorized(message))
		return
	}
	c.Redirect(http.StatusFound, cfg.LoginPath)
	c.Abort()
}
