package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/services/users/handler/http"
)

// Handler coordinates the HTTP handlers of the users service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
	}
}

// RegisterRoutes mounts /auth behind authMiddleware (rate limiting) and
// /user behind jwtMiddleware
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc, authMiddleware ...echo.MiddlewareFunc) {
	authGroup := e.Group("/auth", authMiddleware...)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/reset-password", h.authHandler.RequestPasswordReset)
	authGroup.POST("/reset-password/confirm", h.authHandler.ConfirmPasswordReset)

	userGroup := e.Group("/user", jwtMiddleware)
	userGroup.GET("/profile", h.userHandler.GetProfile)
	userGroup.PUT("/profile", h.userHandler.UpdateProfile)
	userGroup.PUT("/settings", h.userHandler.UpdateSettings)
}
