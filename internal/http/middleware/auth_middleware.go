package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"notedeck/internal/auth"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	Issuer   *auth.Issuer
	UserRepo UserRepository
}

// NewAuthMiddleware gates a protected route group. It rejects the request
// before the handler runs unless the bearer token verifies and resolves to
// an existing user, which then lands in the request context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(header) == "" {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			userId, err := cfg.Issuer.Verify(header, time.Now())
			if errors.Is(err, auth.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, apierror.ExpiredAuthTokenError)
			}
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindByID(userId)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// User deleted in DB but still has a valid token???
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
