// jwt.go - Session token issuing and verification

package auth

import (
	"errors"
	"time"

	"go-gym-tracker/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 72 * time.Hour

// ErrInvalidToken covers missing, malformed, expired and badly signed tokens.
// All of them map to HTTP 401.
var ErrInvalidToken = errors.New("invalid or expired token")

// Issue creates a signed session token carrying the user ID and an expiry.
func Issue(userID string) (string, error) {
	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString([]byte(cfg.JWTSecret))
}

// Verify checks the token signature and expiry and returns the user ID it
// was issued for.
func Verify(tokenString string) (string, error) {
	cfg := config.Load()
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok { // Reject tokens signed with another method
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
