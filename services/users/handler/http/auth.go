package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/logger"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/utils"
	"github.com/piresc/xpend/services/users"
)

// AuthHandler handles the public authentication endpoints
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.ErrorField(err),
			logger.String("endpoint", "Register"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if _, err := h.userUC.Register(c.Request().Context(), &req); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RequestPasswordReset handles POST /auth/reset-password
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.RequestPasswordReset(c.Request().Context(), &req); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password reset instructions sent")
}

// ConfirmPasswordReset handles POST /auth/reset-password/confirm
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req models.ConfirmResetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.ConfirmPasswordReset(c.Request().Context(), &req); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password updated")
}
