package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/xpend/internal/pkg/database"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
)

func setupResetTokenRepoTest(t *testing.T) (*ResetTokenRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return NewResetTokenRepo(&database.RedisClient{Client: client}), mr
}

func TestResetTokenRepo_SaveAndConsume(t *testing.T) {
	repo, mr := setupResetTokenRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveResetToken(ctx, "abc", "u1", time.Hour))
	assert.True(t, mr.Exists("user:reset:abc"))
	assert.Equal(t, time.Hour, mr.TTL("user:reset:abc"))

	userID, err := repo.ConsumeResetToken(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.False(t, mr.Exists("user:reset:abc"))

	_, err = repo.ConsumeResetToken(ctx, "abc")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestResetTokenRepo_Expired(t *testing.T) {
	repo, mr := setupResetTokenRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveResetToken(ctx, "abc", "u1", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.ConsumeResetToken(ctx, "abc")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestResetTokenRepo_RedisFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewResetTokenRepo(&database.RedisClient{Client: db})

	mock.ExpectSet("user:reset:abc", "u1", time.Hour).SetErr(errors.New("READONLY"))
	err := repo.SaveResetToken(context.Background(), "abc", "u1", time.Hour)
	assert.True(t, errors.Is(err, apperrors.ErrUpstream))

	mock.ExpectGetDel("user:reset:abc").SetErr(errors.New("connection refused"))
	_, err = repo.ConsumeResetToken(context.Background(), "abc")
	assert.True(t, errors.Is(err, apperrors.ErrUpstream))

	assert.NoError(t, mock.ExpectationsWereMet())
}
