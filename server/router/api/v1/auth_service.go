package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrygo/summarify/server/auth"
	"github.com/hrygo/summarify/store"
)

const (
	msgNoActiveAccount = "No active account found with the given credentials"
	msgTokenNotValid   = "Token is invalid or expired"
	msgRefreshRequired = "This field is required."
)

type tokenObtainRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenRefreshRequest struct {
	Refresh string `json:"refresh"`
}

// ObtainTokenPair verifies credentials and issues an access/refresh token pair.
func (s *APIV1Service) ObtainTokenPair(c echo.Context) error {
	request := new(tokenObtainRequest)
	if err := c.Bind(request); err != nil || request.Username == "" || request.Password == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": msgNoActiveAccount})
	}

	ctx := c.Request().Context()
	user, err := s.Store.GetUser(ctx, &store.FindUser{Username: &request.Username})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to find user").SetInternal(err)
	}
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": msgNoActiveAccount})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": msgNoActiveAccount})
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, s.Secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate access token").SetInternal(err)
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, s.Secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate refresh token").SetInternal(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access":  accessToken,
		"refresh": refreshToken,
	})
}

// RefreshToken exchanges a valid refresh token for a new access token.
func (s *APIV1Service) RefreshToken(c echo.Context) error {
	request := new(tokenRefreshRequest)
	if err := c.Bind(request); err != nil || request.Refresh == "" {
		return c.JSON(http.StatusBadRequest, map[string][]string{"refresh": {msgRefreshRequired}})
	}

	claims, err := auth.ParseToken(request.Refresh, s.Secret)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": msgTokenNotValid})
	}

	accessToken, err := auth.GenerateAccessToken(claims.UserID, s.Secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate access token").SetInternal(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access": accessToken,
	})
}
