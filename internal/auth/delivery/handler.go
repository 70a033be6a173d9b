package delivery

import (
	"net/http"

	authdto "notes-backend/internal/auth/dto"
	"notes-backend/internal/auth/usecase"
	"notes-backend/pkg/apperr"
	"notes-backend/pkg/config"
	"notes-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles auth-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	resolver    *IdentityResolver
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, resolver *IdentityResolver, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		resolver:    resolver,
		config:      cfg,
	}
}

// Register creates a user and immediately establishes a session.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("All fields are required"))
		return
	}

	session, err := h.authUsecase.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookies(c, session.AccessToken, session.RefreshToken)
	response.JSON(c, http.StatusCreated, session, "User registered successfully")
}

// Login authenticates by username or email.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Username or email is required"))
		return
	}

	session, err := h.authUsecase.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookies(c, session.AccessToken, session.RefreshToken)
	response.JSON(c, http.StatusOK, session, "User logged in successfully")
}

// Refresh rotates the refresh token. The token comes from the cookie,
// with the request body as fallback for non-browser clients.
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(CookieRefreshToken)
	if refreshToken == "" {
		var req authdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		response.Error(c, apperr.Unauthorized("Unauthorized request"))
		return
	}

	pair, err := h.authUsecase.Refresh(refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookies(c, pair.AccessToken, pair.RefreshToken)
	response.JSON(c, http.StatusOK, pair, "Access token refreshed")
}

// Logout revokes the session and clears both cookies. Absence of a
// matching session is not an error.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(CookieRefreshToken)

	if err := h.authUsecase.Logout(refreshToken); err != nil {
		response.Error(c, err)
		return
	}

	h.clearSessionCookies(c)
	response.JSON(c, http.StatusOK, nil, "User logged out")
}

// Me reports whether the caller is logged in and whether they are an
// admin. The admin flag comes from the user record, not the token, so
// the UI sees promotions before the access token rotates.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := h.resolver.Resolve(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, authdto.MeResponse{})
		return
	}

	user, err := h.authUsecase.GetUserByID(identity.UserID)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, authdto.MeResponse{})
		return
	}

	c.JSON(http.StatusOK, authdto.MeResponse{IsLoggedIn: true, IsAdmin: identity.IsAdmin})
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := h.config.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieAccessToken, accessToken, int(h.config.AccessTokenExpiry.Seconds()), "/", "", secure, true)
	c.SetCookie(CookieRefreshToken, refreshToken, int(h.config.RefreshTokenExpiry.Seconds()), "/", "", secure, true)
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	secure := h.config.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieAccessToken, "", -1, "/", "", secure, true)
	c.SetCookie(CookieRefreshToken, "", -1, "/", "", secure, true)
}
