package token

import (
	"errors"
	"time"

	authdomain "notes-backend/internal/auth/domain"
	"notes-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AccessClaims is the payload of an access token. Subject carries the
// user id; the remaining fields let handlers render identity without a
// database round trip. IsAdmin is a snapshot taken at issue time.
type AccessClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// RefreshClaims carries only the subject id. Refresh tokens grant
// nothing by themselves; the stored copy on the user record decides.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// Service signs and verifies both token kinds. Access and refresh
// tokens use distinct secrets, so one kind can never pass verification
// as the other.
type Service struct {
	accessSecret  []byte
	accessExpiry  time.Duration
	refreshSecret []byte
	refreshExpiry time.Duration
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		refreshExpiry: cfg.RefreshTokenExpiry,
	}
}

func (s *Service) IssueAccessToken(user *authdomain.User) (string, error) {
	claims := AccessClaims{
		Email:    user.Email,
		Username: user.Username,
		Fullname: user.Fullname,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessExpiry)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.accessSecret)
}

func (s *Service) IssueRefreshToken(user *authdomain.User) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.refreshExpiry)),
			// Unique per issuance, so consecutive rotations within the
			// same second still produce distinct tokens.
			ID: uuid.New().String(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.refreshSecret)
}

func (s *Service) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := t.Claims.(*AccessClaims)
	if !ok || !t.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &RefreshClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.refreshSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := t.Claims.(*RefreshClaims)
	if !ok || !t.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
