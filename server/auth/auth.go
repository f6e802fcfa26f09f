package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// AccessTokenDuration is the lifetime of an access token.
	AccessTokenDuration = 15 * time.Minute
	// RefreshTokenDuration is the lifetime of a refresh token.
	RefreshTokenDuration = 24 * time.Hour

	// TokenTypeAccess identifies short-lived tokens accepted by the bearer guard.
	TokenTypeAccess = "access"
	// TokenTypeRefresh identifies tokens accepted only by the refresh endpoint.
	TokenTypeRefresh = "refresh"

	issuer = "summarify"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or type checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered claims plus the authenticated user and token kind.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int32  `json:"user_id"`
	TokenType string `json:"token_type"`
}

// GenerateAccessToken issues a signed access token for the user.
func GenerateAccessToken(userID int32, secret string) (string, error) {
	return generateToken(userID, TokenTypeAccess, AccessTokenDuration, secret)
}

// GenerateRefreshToken issues a signed refresh token for the user.
func GenerateRefreshToken(userID int32, secret string) (string, error) {
	return generateToken(userID, TokenTypeRefresh, RefreshTokenDuration, secret)
}

func generateToken(userID int32, tokenType string, duration time.Duration, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			ID:        uuid.NewString(),
		},
		UserID:    userID,
		TokenType: tokenType,
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of a token and returns its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
