package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"medagenda/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "medagenda-dev"
	}
	return []byte(secret)
}

// GenerateSessionToken creates a signed JWT carrying a registration session ID
// as its subject. The wizard endpoints require it on every call after session
// creation, so a client cannot poke at someone else's draft.
func GenerateSessionToken(sessionID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of a token string. Used to fingerprint
// bearer tokens in logs without ever writing the token itself.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateSessionToken parses and validates a session token string.
func ValidateSessionToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractSessionIDFromToken extracts the session ID (subject) from a valid
// session token string.
func ExtractSessionIDFromToken(tokenString string) (string, error) {
	token, err := ValidateSessionToken(tokenString)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}
