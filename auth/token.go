package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"match-lab/errors"
)

const issuer = "match-lab"

// Claims is the payload stored inside session tokens.
type Claims struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens. It implements the
// verified-identity lookup the matchmaking core consumes: it never touches
// connections or queue state itself.
type TokenService struct {
	secret   []byte
	duration time.Duration
}

func NewTokenService(secret string, duration time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), duration: duration}
}

// GenerateToken creates a signed session JWT for a user.
func (s *TokenService) GenerateToken(userID, displayName string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      userID,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ResolveAuthenticatedUser validates a bearer token and returns the identity
// it carries. Invalid or expired tokens fail with ErrUnauthenticated; the
// caller rejects only the operation that required identity.
func (s *TokenService) ResolveAuthenticatedUser(tokenString string) (string, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", "", errors.ErrUnauthenticated
	}
	return claims.UserID, claims.DisplayName, nil
}
