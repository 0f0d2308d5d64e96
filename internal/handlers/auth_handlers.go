package handlers

import (
	"errors"
	"net/http"

	"acmedash/internal/common"
	"acmedash/internal/services"

	"github.com/labstack/echo/v4"
)

type AuthHandlers struct {
	authSvc services.AuthService
}

func NewAuthHandlers(authSvc services.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// Login handles POST /login with email/password form fields. A
// credential mismatch gets "Invalid credentials.", any other
// classified auth failure gets "Something went wrong."; unclassified
// errors propagate to echo's error handler.
func (h *AuthHandlers) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	session, err := h.authSvc.Authenticate(c.Request().Context(), email, password)
	if err != nil {
		var authErr *common.AuthError
		if errors.As(err, &authErr) {
			if authErr.Type == common.AuthErrorCredentials {
				return common.SendUnauthorizedError(c, "Invalid credentials.")
			}
			return common.SendServerError(c, "Something went wrong.")
		}
		return err
	}

	return c.JSON(http.StatusOK, session)
}
