package dto

import authdomain "notes-backend/internal/auth/domain"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// SessionResponse is the data payload returned by register and login.
// The user is serialized without password or refresh token fields.
type SessionResponse struct {
	User         *authdomain.User `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

// TokenPair is the data payload returned by refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MeResponse mirrors the identity probe the UI polls.
type MeResponse struct {
	IsLoggedIn bool `json:"isLoggedIn"`
	IsAdmin    bool `json:"isAdmin"`
}
