package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/internal/utils"
	"github.com/piresc/xpend/services/users"
)

// UserHandler handles the profile and settings endpoints
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUC.GetProfile(c.Request().Context(), requestcontext.UserIDFromEcho(c))
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /user/profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), requestcontext.UserIDFromEcho(c), &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateSettings handles PUT /user/settings
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	var req models.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	settings, err := h.userUC.UpdateSettings(c.Request().Context(), requestcontext.UserIDFromEcho(c), &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}
