package http

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shipments/internal/core/domain/model/user"
)

// ErrInvalidToken is returned for expired, malformed, or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the JWT payload issued at login. Role travels in the token so
// route guards never need a database round trip.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 tokens.
type TokenService struct {
	secret  []byte
	expires time.Duration
}

// NewTokenService creates a token service with the given signing secret
// and token lifetime.
func NewTokenService(secret string, expires time.Duration) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		expires: expires,
	}
}

// Issue signs a token for the given account.
func (s *TokenService) Issue(account *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: account.ID().String(),
		Email:  account.Email(),
		Role:   account.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expires)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token string and returns its claims.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
