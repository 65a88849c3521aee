package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/xpend/internal/pkg/constants"
	"github.com/piresc/xpend/internal/pkg/database"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
)

// ResetTokenRepo keeps password reset tokens in Redis with a TTL
type ResetTokenRepo struct {
	redisClient *database.RedisClient
}

// NewResetTokenRepo creates a Redis backed token store
func NewResetTokenRepo(redisClient *database.RedisClient) *ResetTokenRepo {
	return &ResetTokenRepo{redisClient: redisClient}
}

// SaveResetToken stores token -> userID until ttl elapses
func (r *ResetTokenRepo) SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyPasswordReset, token)
	if err := r.redisClient.Client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return apperrors.Upstream("save reset token", err)
	}
	return nil
}

// ConsumeResetToken reads and deletes token in one round trip
func (r *ResetTokenRepo) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	key := fmt.Sprintf(constants.KeyPasswordReset, token)
	userID, err := r.redisClient.Client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return "", apperrors.New(apperrors.ErrValidation, "Invalid or expired reset token")
	}
	if err != nil {
		return "", apperrors.Upstream("consume reset token", err)
	}
	return userID, nil
}
