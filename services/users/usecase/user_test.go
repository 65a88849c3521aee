package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	jwtpkg "github.com/piresc/xpend/internal/pkg/jwt"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/services/users/mocks"
)

type testDeps struct {
	repo   *mocks.MockUserRepo
	tokens *mocks.MockResetTokenRepo
	gw     *mocks.MockUserGW
	uc     *UserUC
}

func newTestUC(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
		Auth: models.AuthConfig{
			BcryptCost:    bcrypt.MinCost,
			ResetTokenTTL: time.Hour,
		},
	}
	d := testDeps{
		repo:   mocks.NewMockUserRepo(ctrl),
		tokens: mocks.NewMockResetTokenRepo(ctrl),
		gw:     mocks.NewMockUserGW(ctrl),
	}
	d.uc = NewUserUC(d.repo, d.tokens, d.gw, cfg)
	return d
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

var notFound = apperrors.New(apperrors.ErrNotFound, "User not found")

func TestRegister_Success(t *testing.T) {
	d := newTestUC(t)

	d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(nil, notFound)
	d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = "u1"
			return nil
		})

	user, err := d.uc.Register(context.Background(), &models.RegisterRequest{
		Name:     " Ann ",
		Email:    "Ann@Example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, models.DefaultSettings(), user.Settings)
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestRegister_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		req     *models.RegisterRequest
		setup   func(d testDeps)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     &models.RegisterRequest{Email: "ann@example.com", Password: "secret"},
			wantErr: apperrors.ErrValidation,
			wantMsg: "name is required",
		},
		{
			name:    "short password",
			req:     &models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "123"},
			wantErr: apperrors.ErrValidation,
			wantMsg: "password must be at least 6 characters",
		},
		{
			name: "existing email",
			req:  &models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"},
			setup: func(d testDeps) {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(&models.User{ID: "u0"}, nil)
			},
			wantErr: apperrors.ErrDuplicate,
			wantMsg: "User already exists",
		},
		{
			name: "store failure",
			req:  &models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"},
			setup: func(d testDeps) {
				d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").
					Return(nil, apperrors.Upstream("get user", errors.New("down")))
			},
			wantErr: apperrors.ErrUpstream,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestUC(t)
			if tc.setup != nil {
				tc.setup(d)
			}

			user, err := d.uc.Register(context.Background(), tc.req)
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, tc.wantErr))
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, err.Error())
			}
		})
	}
}

func TestLogin(t *testing.T) {
	stored := &models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Password: hashed(t, "secret")}

	t.Run("success", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)

		resp, err := d.uc.Login(context.Background(), &models.LoginRequest{Email: "ANN@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, stored, resp.User)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

		claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)

		_, err := d.uc.Login(context.Background(), &models.LoginRequest{Email: "ann@example.com", Password: "nope"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("unknown email", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "who@example.com").Return(nil, notFound)

		_, err := d.uc.Login(context.Background(), &models.LoginRequest{Email: "who@example.com", Password: "secret"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("changes provided fields only", func(t *testing.T) {
		d := newTestUC(t)
		current := &models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Password: "old-hash"}
		d.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(current, nil)
		d.repo.EXPECT().UpdateUser(gomock.Any(), current).Return(nil)

		name := "Ann Smith"
		empty := ""
		user, err := d.uc.UpdateProfile(context.Background(), "u1", &models.UpdateProfileRequest{Name: &name, Password: &empty})
		require.NoError(t, err)
		assert.Equal(t, "Ann Smith", user.Name)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, "old-hash", user.Password)
	})

	t.Run("ignores empty email and password", func(t *testing.T) {
		d := newTestUC(t)
		current := &models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Password: "old-hash"}
		d.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(current, nil)
		d.repo.EXPECT().UpdateUser(gomock.Any(), current).Return(nil)

		empty, blank := "", "   "
		user, err := d.uc.UpdateProfile(context.Background(), "u1", &models.UpdateProfileRequest{
			Name:     &blank,
			Email:    &empty,
			Password: &empty,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ann", user.Name)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, "old-hash", user.Password)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		d := newTestUC(t)
		email := "not-an-email"
		_, err := d.uc.UpdateProfile(context.Background(), "u1", &models.UpdateProfileRequest{Email: &email})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		assert.Equal(t, "email must be a valid email address", err.Error())
	})

	t.Run("rejects taken email", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&models.User{ID: "u1", Email: "ann@example.com"}, nil)
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(&models.User{ID: "u2"}, nil)

		email := "bob@example.com"
		_, err := d.uc.UpdateProfile(context.Background(), "u1", &models.UpdateProfileRequest{Email: &email})
		assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	})

	t.Run("rehashes password", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&models.User{ID: "u1", Email: "ann@example.com"}, nil)
		d.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

		password := "new-secret"
		user, err := d.uc.UpdateProfile(context.Background(), "u1", &models.UpdateProfileRequest{Password: &password})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-secret")))
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByID(gomock.Any(), "u1").
			Return(&models.User{ID: "u1", Settings: models.DefaultSettings()}, nil)
		d.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

		currency := "eur"
		sms := true
		settings, err := d.uc.UpdateSettings(context.Background(), "u1", &models.UpdateSettingsRequest{
			Currency:      &currency,
			Notifications: &models.UpdateNotificationsRequest{SMS: &sms},
		})
		require.NoError(t, err)
		assert.Equal(t, &models.Settings{
			Currency:      "EUR",
			Notifications: models.Notifications{Email: true, SMS: true, BudgetAlerts: true},
		}, settings)
	})

	t.Run("invalid currency", func(t *testing.T) {
		d := newTestUC(t)
		currency := "XXXX"
		_, err := d.uc.UpdateSettings(context.Background(), "u1", &models.UpdateSettingsRequest{Currency: &currency})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}

func TestRequestPasswordReset(t *testing.T) {
	t.Run("stores token and publishes event", func(t *testing.T) {
		d := newTestUC(t)
		user := &models.User{ID: "u1", Name: "Ann", Email: "ann@example.com"}

		var savedToken string
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(user, nil)
		d.tokens.EXPECT().SaveResetToken(gomock.Any(), gomock.Any(), "u1", time.Hour).
			DoAndReturn(func(_ context.Context, token, _ string, _ time.Duration) error {
				savedToken = token
				return nil
			})
		d.gw.EXPECT().PublishPasswordReset(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.PasswordResetEvent) error {
				assert.Equal(t, savedToken, event.Token)
				assert.Equal(t, "ann@example.com", event.Email)
				return nil
			})

		require.NoError(t, d.uc.RequestPasswordReset(context.Background(), &models.ResetPasswordRequest{Email: "ann@example.com"}))
		assert.Len(t, savedToken, resetTokenLength)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(&models.User{ID: "u1"}, nil)
		d.tokens.EXPECT().SaveResetToken(gomock.Any(), gomock.Any(), "u1", time.Hour).Return(nil)
		d.gw.EXPECT().PublishPasswordReset(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

		assert.NoError(t, d.uc.RequestPasswordReset(context.Background(), &models.ResetPasswordRequest{Email: "ann@example.com"}))
	})

	t.Run("unknown email", func(t *testing.T) {
		d := newTestUC(t)
		d.repo.EXPECT().GetUserByEmail(gomock.Any(), "who@example.com").Return(nil, notFound)

		err := d.uc.RequestPasswordReset(context.Background(), &models.ResetPasswordRequest{Email: "who@example.com"})
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestConfirmPasswordReset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newTestUC(t)
		d.tokens.EXPECT().ConsumeResetToken(gomock.Any(), "tok").Return("u1", nil)
		d.repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&models.User{ID: "u1", Password: "old"}, nil)
		d.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("brand-new")))
				return nil
			})

		assert.NoError(t, d.uc.ConfirmPasswordReset(context.Background(), &models.ConfirmResetRequest{Token: "tok", Password: "brand-new"}))
	})

	t.Run("invalid token", func(t *testing.T) {
		d := newTestUC(t)
		d.tokens.EXPECT().ConsumeResetToken(gomock.Any(), "tok").
			Return("", apperrors.New(apperrors.ErrValidation, "Invalid or expired reset token"))

		err := d.uc.ConfirmPasswordReset(context.Background(), &models.ConfirmResetRequest{Token: "tok", Password: "brand-new"})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}
