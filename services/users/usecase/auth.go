package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	jwtpkg "github.com/piresc/xpend/internal/pkg/jwt"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/validation"
	"github.com/piresc/xpend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenLength = 64

var errInvalidCredentials = apperrors.New(apperrors.ErrInvalidCredentials, "Invalid credentials")

// Register creates an account with default settings
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	email := utils.NormalizeEmail(req.Email)

	_, err := u.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.New(apperrors.ErrDuplicate, "User already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
		Settings: models.DefaultSettings(),
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID),
		logger.String("email", utils.MaskEmail(email)))
	return user, nil
}

// Login verifies credentials and issues a signed token
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Login rejected",
			logger.String("user_id", user.ID))
		return nil, errInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// RequestPasswordReset stores a single-use token and announces it so the
// notifier can mail it
func (u *UserUC) RequestPasswordReset(ctx context.Context, req *models.ResetPasswordRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		return err
	}

	token, err := utils.GenerateRandomHex(resetTokenLength)
	if err != nil {
		return err
	}
	ttl := u.cfg.Auth.ResetTokenTTL
	if err := u.tokenRepo.SaveResetToken(ctx, token, user.ID, ttl); err != nil {
		return err
	}

	event := &models.PasswordResetEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := u.userGW.PublishPasswordReset(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish password reset event",
			logger.String("user_id", user.ID),
			logger.ErrorField(err))
	}
	return nil
}

// ConfirmPasswordReset consumes token and sets the new password
func (u *UserUC) ConfirmPasswordReset(ctx context.Context, req *models.ConfirmResetRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	userID, err := u.tokenRepo.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		return err
	}
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := u.hashPassword(req.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Password reset completed", logger.String("user_id", user.ID))
	return nil
}

func (u *UserUC) hashPassword(password string) (string, error) {
	cost := u.cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
