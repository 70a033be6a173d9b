package delivery

import (
	"notes-backend/internal/auth/repository"
	"notes-backend/internal/auth/token"
	"notes-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated caller as seen by resource handlers.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// IdentityResolver recovers the caller identity inside handlers. It
// prefers the headers the gate injected and falls back to verifying the
// access token cookie directly, so handlers reached outside the gate's
// path matcher still enforce authentication.
type IdentityResolver struct {
	tokens   *token.Service
	userRepo repository.UserRepository
}

func NewIdentityResolver(tokens *token.Service, userRepo repository.UserRepository) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, userRepo: userRepo}
}

func (r *IdentityResolver) Resolve(c *gin.Context) (*Identity, error) {
	userID := c.GetHeader(HeaderUserID)
	isAdmin := c.GetHeader(HeaderUserAdmin) == "true"

	if userID == "" {
		if tokenString, err := c.Cookie(CookieAccessToken); err == nil && tokenString != "" {
			if claims, err := r.tokens.VerifyAccessToken(tokenString); err == nil {
				userID = claims.Subject
				isAdmin = claims.IsAdmin
			}
		}
	}

	if userID == "" {
		return nil, apperr.Unauthorized("Unauthorized: User not found")
	}

	// The token's admin snapshot can be stale: promotion may have
	// happened after issuance, so a false flag is re-checked against
	// the user record.
	if !isAdmin {
		if user, err := r.userRepo.FindByID(userID); err == nil && user != nil && user.IsAdmin {
			isAdmin = true
		}
	}

	return &Identity{UserID: userID, IsAdmin: isAdmin}, nil
}
