package repository

import (
	authdomain "notes-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository abstracts user persistence. Implementations return
// (nil, nil) when a lookup finds nothing.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByID(id string) (*authdomain.User, error)
	FindByUsernameOrEmail(username, email string) (*authdomain.User, error)
	FindByRefreshToken(token string) (*authdomain.User, error)
	Update(user *authdomain.User) error
	SetRefreshToken(userID, token string) error
	ClearRefreshToken(userID string) error
	SetAdmin(userID string) error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
