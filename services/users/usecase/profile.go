package usecase

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/validation"
	"github.com/piresc/xpend/internal/utils"
)

// GetProfile returns the requester's account
func (u *UserUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies the provided, non-empty fields of req
func (u *UserUC) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	req.Name = presentOrNil(req.Name)
	req.Email = presentOrNil(req.Email)
	if req.Password != nil && *req.Password == "" {
		req.Password = nil
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		if email != user.Email {
			if err := u.ensureEmailFree(ctx, email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := u.hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateSettings applies the provided settings and returns the full result
func (u *UserUC) UpdateSettings(ctx context.Context, userID string, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	if req.Currency != nil {
		upper := strings.ToUpper(strings.TrimSpace(*req.Currency))
		req.Currency = &upper
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		user.Settings.Currency = *req.Currency
	}
	if n := req.Notifications; n != nil {
		if n.Email != nil {
			user.Settings.Notifications.Email = *n.Email
		}
		if n.SMS != nil {
			user.Settings.Notifications.SMS = *n.SMS
		}
		if n.BudgetAlerts != nil {
			user.Settings.Notifications.BudgetAlerts = *n.BudgetAlerts
		}
	}

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user.Settings, nil
}

// presentOrNil trims v and treats an empty value as absent
func presentOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (u *UserUC) ensureEmailFree(ctx context.Context, email string) error {
	_, err := u.userRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return apperrors.New(apperrors.ErrDuplicate, "Email already in use")
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return err
	}
}
