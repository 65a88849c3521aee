package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
)

// MemoryUserRepo is an in-process users.UserRepo used in demo mode and tests
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewMemoryUserRepo creates an empty store
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]*models.User)}
}

func (r *MemoryUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, "") {
		return apperrors.New(apperrors.ErrDuplicate, "User already exists")
	}
	user.ID = uuid.NewString()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
	}
	found := *user
	return &found, nil
}

func (r *MemoryUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
}

func (r *MemoryUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return apperrors.New(apperrors.ErrNotFound, "User not found")
	}
	if r.emailTaken(user.Email, user.ID) {
		return apperrors.New(apperrors.ErrDuplicate, "Email already in use")
	}
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepo) ListUsersWithBudgetAlerts(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		if user.Settings.Notifications.BudgetAlerts {
			found := *user
			users = append(users, &found)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// emailTaken must be called with mu held
func (r *MemoryUserRepo) emailTaken(email, exceptID string) bool {
	for id, user := range r.users {
		if id != exceptID && user.Email == email {
			return true
		}
	}
	return false
}

type resetEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryResetTokenRepo is an in-process users.ResetTokenRepo
type MemoryResetTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]resetEntry
	now    func() time.Time
}

// NewMemoryResetTokenRepo creates an empty token store
func NewMemoryResetTokenRepo() *MemoryResetTokenRepo {
	return &MemoryResetTokenRepo{
		tokens: make(map[string]resetEntry),
		now:    time.Now,
	}
}

func (r *MemoryResetTokenRepo) SaveResetToken(_ context.Context, token, userID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = resetEntry{userID: userID, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *MemoryResetTokenRepo) ConsumeResetToken(_ context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.tokens[token]
	delete(r.tokens, token)
	if !ok || !r.now().Before(entry.expiresAt) {
		return "", apperrors.New(apperrors.ErrValidation, "Invalid or expired reset token")
	}
	return entry.userID, nil
}
