package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/quicklinks/quicklinks-backend/internal/config"
)

// SessionCookieName carries the signed session token between requests.
const SessionCookieName = "ql_session"

// SessionLifetime matches the original 24h session cookie.
const SessionLifetime = 24 * time.Hour

type SessionClaims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for the given user. The
// returned jti identifies the session for revocation on logout.
func GenerateSessionToken(userID uint, role string) (string, string, error) {
	jti := uuid.New().String()

	claims := &SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "quicklinks-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.SessionSecret))
	if err != nil {
		return "", "", err
	}

	return signed, jti, nil
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.SessionSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
