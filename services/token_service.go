package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService issues the JWTs the auth middleware validates. Claims carry
// email, role, username and id, matching what the middleware and clients
// read.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) GenerateToken(email, role, username, userID string) (string, error) {
	claims := jwt.MapClaims{
		"email":    email,
		"role":     role,
		"username": username,
		"id":       userID,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
