package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
)

func TestMemoryUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	ann := &models.User{Name: "Ann", Email: "ann@example.com", Settings: models.DefaultSettings()}
	require.NoError(t, repo.CreateUser(ctx, ann))
	assert.NotEmpty(t, ann.ID)

	err := repo.CreateUser(ctx, &models.User{Name: "Other", Email: "ann@example.com"})
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))

	bob := &models.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, repo.CreateUser(ctx, bob))

	found, err := repo.GetUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, found.ID)

	// callers get copies
	found.Name = "changed"
	again, err := repo.GetUserByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.Name)

	again.Email = "bob@example.com"
	assert.True(t, errors.Is(repo.UpdateUser(ctx, again), apperrors.ErrDuplicate))

	again.Email = "ann@new.example.com"
	require.NoError(t, repo.UpdateUser(ctx, again))
	_, err = repo.GetUserByEmail(ctx, "ann@example.com")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	assert.True(t, errors.Is(repo.UpdateUser(ctx, &models.User{ID: "missing"}), apperrors.ErrNotFound))

	alerted, err := repo.ListUsersWithBudgetAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerted, 1)
	assert.Equal(t, ann.ID, alerted[0].ID)
}

func TestMemoryResetTokenRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryResetTokenRepo()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.SaveResetToken(ctx, "tok", "u1", time.Hour))

	userID, err := repo.ConsumeResetToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = repo.ConsumeResetToken(ctx, "tok")
	assert.True(t, errors.Is(err, apperrors.ErrValidation), "tokens are single use")

	require.NoError(t, repo.SaveResetToken(ctx, "old", "u1", time.Minute))
	now = now.Add(2 * time.Minute)
	_, err = repo.ConsumeResetToken(ctx, "old")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
