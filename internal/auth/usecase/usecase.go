package usecase

import (
	authdomain "notes-backend/internal/auth/domain"
	authdto "notes-backend/internal/auth/dto"
)

// AuthUsecase owns the session lifecycle: credential checks, token
// issuance, refresh rotation and revocation.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.SessionResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.SessionResponse, error)
	Refresh(refreshToken string) (*authdto.TokenPair, error)
	Logout(refreshToken string) error
	GetUserByID(id string) (*authdomain.User, error)
}
