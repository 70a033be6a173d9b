package testutil

import (
	"sync"
	"time"

	authdomain "notes-backend/internal/auth/domain"
	authrepo "notes-backend/internal/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryUserRepository is an in-memory UserRepository. Create hashes
// plaintext passwords the same way the gorm BeforeSave hook does.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*authdomain.User
}

var _ authrepo.UserRepository = (*MemoryUserRepository)(nil)

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*authdomain.User)}
}

func (r *MemoryUserRepository) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Password != "" {
		if _, err := bcrypt.Cost([]byte(user.Password)); err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
			if err != nil {
				return err
			}
			user.Password = string(hashed)
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *MemoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *MemoryUserRepository) FindByUsernameOrEmail(username, email string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if (username != "" && user.Username == username) || (email != "" && user.Email == email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByRefreshToken(token string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if token != "" && user.RefreshToken == token {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *MemoryUserRepository) SetRefreshToken(userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[userID]; ok {
		user.RefreshToken = token
		user.UpdatedAt = time.Now()
	}
	return nil
}

func (r *MemoryUserRepository) ClearRefreshToken(userID string) error {
	return r.SetRefreshToken(userID, "")
}

func (r *MemoryUserRepository) SetAdmin(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[userID]; ok {
		user.IsAdmin = true
		user.UpdatedAt = time.Now()
	}
	return nil
}
