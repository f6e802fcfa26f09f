package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the echo context key holding the authenticated user ID.
const UserIDContextKey = "user-id"

// Bearer guard responses mirror the identity layer's wording.
const (
	msgCredentialsNotProvided = "Authentication credentials were not provided."
	msgTokenInvalidOrExpired  = "Token is invalid or expired"
)

// BearerAuth returns a middleware that rejects requests without a valid access
// token. It is attached per-route; routes without it stay public.
func BearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"detail": msgCredentialsNotProvided})
			}

			claims, err := ParseToken(tokenString, secret)
			if err != nil || claims.TokenType != TokenTypeAccess {
				return c.JSON(http.StatusUnauthorized, map[string]string{"detail": msgTokenInvalidOrExpired})
			}

			c.Set(UserIDContextKey, claims.UserID)
			return next(c)
		}
	}
}

// GetUserID returns the authenticated user ID from the echo context, or 0 for
// anonymous requests.
func GetUserID(c echo.Context) int32 {
	if userID, ok := c.Get(UserIDContextKey).(int32); ok {
		return userID
	}
	return 0
}
