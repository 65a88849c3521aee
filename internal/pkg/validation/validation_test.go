package validation

import (
	"errors"
	"testing"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantMsg string
	}{
		{
			name:  "valid registration",
			input: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"},
		},
		{
			name:    "missing name",
			input:   models.RegisterRequest{Email: "ann@example.com", Password: "secret"},
			wantMsg: "name is required",
		},
		{
			name:    "bad email",
			input:   models.RegisterRequest{Name: "Ann", Email: "ann", Password: "secret"},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "short password",
			input:   models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "123"},
			wantMsg: "password must be at least 6 characters",
		},
		{
			name:    "non positive allocation",
			input:   models.CreateBudgetRequest{Category: "Food", Allocated: 0},
			wantMsg: "allocated must be greater than 0",
		},
		{
			name:    "unknown currency",
			input:   models.UpdateSettingsRequest{Currency: ptr("XYZ")},
			wantMsg: "currency must be an ISO 4217 currency code",
		},
		{
			name:  "known currency",
			input: models.UpdateSettingsRequest{Currency: ptr("EUR")},
		},
		{
			name:  "absent optional fields",
			input: models.UpdateProfileRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("currency", "USD", "iso4217"))

	err := Var("currency", "usd!", "iso4217")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "currency must be an ISO 4217 currency code", err.Error())
}
