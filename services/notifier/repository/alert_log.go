package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/xpend/internal/pkg/constants"
	"github.com/piresc/xpend/internal/pkg/database"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
)

// AlertLog records sent budget alerts in Redis
type AlertLog struct {
	redisClient *database.RedisClient
}

// NewAlertLog creates a Redis backed alert log
func NewAlertLog(redisClient *database.RedisClient) *AlertLog {
	return &AlertLog{redisClient: redisClient}
}

// MarkAlerted sets the alert key with SETNX so concurrent notifiers agree on
// a single sender
func (r *AlertLog) MarkAlerted(ctx context.Context, budgetID, day string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyBudgetAlert, budgetID, day)
	ok, err := r.redisClient.Client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, apperrors.Upstream("mark budget alert", err)
	}
	return ok, nil
}

// UnmarkAlerted deletes the alert key so a later event can retry delivery
func (r *AlertLog) UnmarkAlerted(ctx context.Context, budgetID, day string) error {
	key := fmt.Sprintf(constants.KeyBudgetAlert, budgetID, day)
	if err := r.redisClient.Client.Del(ctx, key).Err(); err != nil {
		return apperrors.Upstream("unmark budget alert", err)
	}
	return nil
}

// MemoryAlertLog is an in-process notifier.AlertLog
type MemoryAlertLog struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryAlertLog creates an empty alert log
func NewMemoryAlertLog() *MemoryAlertLog {
	return &MemoryAlertLog{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (r *MemoryAlertLog) MarkAlerted(_ context.Context, budgetID, day string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf(constants.KeyBudgetAlert, budgetID, day)
	now := r.now()
	if expiresAt, ok := r.entries[key]; ok && now.Before(expiresAt) {
		return false, nil
	}
	r.entries[key] = now.Add(ttl)
	return true, nil
}

func (r *MemoryAlertLog) UnmarkAlerted(_ context.Context, budgetID, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, fmt.Sprintf(constants.KeyBudgetAlert, budgetID, day))
	return nil
}
