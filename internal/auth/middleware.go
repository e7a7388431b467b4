// Package auth carries the request-authorization middleware. A bearer
// token is verified against the identity provider on every protected
// request; verification results are never cached.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "showcase/internal/errors"
	"showcase/internal/model"
)

const (
	userContextKey  = "auth.user"
	tokenContextKey = "auth.token"

	bearerPrefix = "Bearer "
)

// IdentityResolver turns a bearer token into the mirrored local user.
// Satisfied by service.AuthService.
type IdentityResolver interface {
	CurrentUser(ctx context.Context, accessToken string) (*model.User, error)
}

// RequireUser rejects requests without a bearer token with 401 before
// any handler logic runs, verifies present tokens remotely, rejects
// provider-refused tokens with 403, and attaches the resolved user to
// the echo context on success.
func RequireUser(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication required",
					Code:  "AUTH_REQUIRED",
				})
			}

			user, err := resolver.CurrentUser(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}

			c.Set(userContextKey, user)
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	return token, token != ""
}

// UserFrom returns the authenticated user attached by RequireUser.
func UserFrom(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

// TokenFrom returns the bearer token attached by RequireUser.
func TokenFrom(c echo.Context) (string, bool) {
	token, ok := c.Get(tokenContextKey).(string)
	return token, ok
}
