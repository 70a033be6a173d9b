package domain

import (
	"time"

	authdomain "notes-backend/internal/auth/domain"
)

// Note is a user-owned note. Exactly one owner; only the owner or an
// admin may read or mutate it.
type Note struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	Title       string           `json:"title" gorm:"not null"`
	Description string           `json:"description" gorm:"not null"`
	OwnerID     string           `json:"owner_id" gorm:"index;not null"`
	Owner       *authdomain.User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
