package usecase

import (
	"strings"

	authdomain "notes-backend/internal/auth/domain"
	authdto "notes-backend/internal/auth/dto"
	"notes-backend/internal/auth/repository"
	"notes-backend/internal/auth/token"
	"notes-backend/pkg/apperr"
	"notes-backend/pkg/config"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	config   *config.Config
}

func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.SessionResponse, error) {
	for _, field := range []string{req.Username, req.Email, req.Fullname, req.Password} {
		if strings.TrimSpace(field) == "" {
			return nil, apperr.Validation("All fields are required")
		}
	}

	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Fullname: req.Fullname,
		Password: req.Password,
	}
	user.Normalize()

	existing, err := u.userRepo.FindByUsernameOrEmail(user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User with email or username already exists")
	}

	// Password is hashed by the domain BeforeSave hook.
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueSession(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.SessionResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" && email == "" {
		return nil, apperr.Validation("Username or email is required")
	}

	user, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User does not exist")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.Unauthorized("Invalid user credentials")
	}

	if err := u.promoteIfAllowListed(user); err != nil {
		return nil, err
	}

	return u.issueSession(user)
}

// promoteIfAllowListed grants the admin flag when the allow-list names
// the user. Promotion is one-directional: nothing here ever demotes.
func (u *authUsecase) promoteIfAllowListed(user *authdomain.User) error {
	if user.IsAdmin || len(u.config.AdminIdentifiers) == 0 {
		return nil
	}
	for _, id := range u.config.AdminIdentifiers {
		if id == strings.ToLower(user.Email) || id == strings.ToLower(user.Username) {
			if err := u.userRepo.SetAdmin(user.ID); err != nil {
				return err
			}
			user.IsAdmin = true
			return nil
		}
	}
	return nil
}

// Refresh rotates the session. Refresh tokens are single-use: the
// presented token must equal the stored one exactly, and a new token
// replaces it on every call. Concurrent refreshes for one user race
// last-write-wins; the losers see the reuse error.
func (u *authUsecase) Refresh(refreshToken string) (*authdto.TokenPair, error) {
	claims, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}

	if user.RefreshToken != refreshToken {
		return nil, apperr.Unauthorized("Refresh token is expired or already used")
	}

	accessToken, newRefreshToken, err := u.generateAndStoreTokens(user)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout clears the stored refresh token of whichever user holds the
// presented one. Unknown tokens are a no-op, so logout is idempotent.
func (u *authUsecase) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	user, err := u.userRepo.FindByRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	return u.userRepo.ClearRefreshToken(user.ID)
}

func (u *authUsecase) GetUserByID(id string) (*authdomain.User, error) {
	return u.userRepo.FindByID(id)
}

func (u *authUsecase) issueSession(user *authdomain.User) (*authdto.SessionResponse, error) {
	accessToken, refreshToken, err := u.generateAndStoreTokens(user)
	if err != nil {
		return nil, err
	}

	sanitized := *user
	sanitized.Password = ""
	sanitized.RefreshToken = ""

	return &authdto.SessionResponse{
		User:         &sanitized,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) generateAndStoreTokens(user *authdomain.User) (string, string, error) {
	accessToken, err := u.tokens.IssueAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := u.tokens.IssueRefreshToken(user)
	if err != nil {
		return "", "", err
	}

	// Overwriting the stored token revokes any previously issued one.
	if err := u.userRepo.SetRefreshToken(user.ID, refreshToken); err != nil {
		return "", "", err
	}
	user.RefreshToken = refreshToken

	return accessToken, refreshToken, nil
}
