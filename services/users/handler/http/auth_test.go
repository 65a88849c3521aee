package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/services/users/mocks"
)

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockUserUC)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "Success",
			body: `{"name":"Ann","email":"ann@example.com","password":"secret"}`,
			setup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().Register(gomock.Any(), &models.RegisterRequest{
					Name: "Ann", Email: "ann@example.com", Password: "secret",
				}).Return(&models.User{ID: "u1"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Invalid payload",
			body:       `{invalid_json}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request payload",
		},
		{
			name: "Duplicate user",
			body: `{"name":"Ann","email":"ann@example.com","password":"secret"}`,
			setup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.New(apperrors.ErrDuplicate, "User already exists"))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "User already exists",
		},
		{
			name: "Store failure hides details",
			body: `{"name":"Ann","email":"ann@example.com","password":"secret"}`,
			setup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.Upstream("insert user", errors.New("pq: connection refused")))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserUC := mocks.NewMockUserUC(ctrl)
			if tc.setup != nil {
				tc.setup(mockUserUC)
			}

			c, rec := newJSONContext(http.MethodPost, "/auth/register", tc.body)
			require.NoError(t, NewAuthHandler(mockUserUC).Register(c))

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tc.wantStatus < 400, body["success"])
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, body["message"])
				assert.Equal(t, float64(tc.wantStatus), body["code"])
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUserUC := mocks.NewMockUserUC(ctrl)
		mockUserUC.EXPECT().Login(gomock.Any(), &models.LoginRequest{Email: "ann@example.com", Password: "secret"}).
			Return(&models.AuthResponse{
				Token: "jwt",
				User:  &models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Password: "hash"},
			}, nil)

		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ann@example.com","password":"secret"}`)
		require.NoError(t, NewAuthHandler(mockUserUC).Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "jwt", body["token"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "u1", user["id"])
		assert.NotContains(t, user, "password")
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUserUC := mocks.NewMockUserUC(ctrl)
		mockUserUC.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.ErrInvalidCredentials, "Invalid credentials"))

		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ann@example.com","password":"bad"}`)
		require.NoError(t, NewAuthHandler(mockUserUC).Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})
}

func TestPasswordReset(t *testing.T) {
	t.Run("Unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUserUC := mocks.NewMockUserUC(ctrl)
		mockUserUC.EXPECT().RequestPasswordReset(gomock.Any(), &models.ResetPasswordRequest{Email: "who@example.com"}).
			Return(apperrors.New(apperrors.ErrNotFound, "User not found"))

		c, rec := newJSONContext(http.MethodPost, "/auth/reset-password", `{"email":"who@example.com"}`)
		require.NoError(t, NewAuthHandler(mockUserUC).RequestPasswordReset(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUserUC := mocks.NewMockUserUC(ctrl)
		mockUserUC.EXPECT().ConfirmPasswordReset(gomock.Any(), &models.ConfirmResetRequest{Token: "tok", Password: "secret1"}).
			Return(nil)

		c, rec := newJSONContext(http.MethodPost, "/auth/reset-password/confirm", `{"token":"tok","password":"secret1"}`)
		require.NoError(t, NewAuthHandler(mockUserUC).ConfirmPasswordReset(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	})
}
