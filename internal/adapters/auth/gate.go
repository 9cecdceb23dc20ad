// Package auth is the bearer-credential boundary: it turns a signed token
// into an identity claim and nothing else. The signing secret is injected
// at construction; there is no package-level state.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/entity"
)

// Claims is the identity a verified credential yields.
type Claims struct {
	UserID               string
	Name                 string
	Email                string
	Role                 entity.Role
	SocietyRequestStatus entity.SocietyRequestStatus
}

type tokenClaims struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Role                 string `json:"role"`
	SocietyRequestStatus string `json:"societyRequestStatus"`
	jwt.RegisteredClaims
}

type Gate struct {
	secret []byte
	ttl    time.Duration
}

func NewGate(secret string, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Gate{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's identity claim.
func (g *Gate) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Name:                 user.Name,
		Email:                user.Email,
		Role:                 string(user.Role),
		SocietyRequestStatus: string(user.SocietyRequestStatus),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token. Any failure (malformed,
// bad signature, expired) maps to Unauthenticated.
func (g *Gate) Verify(tokenString string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Join(errorz.Unauthenticated, err)
	}

	role := entity.Role(claims.Role)
	if !role.Valid() {
		return nil, errorz.Unauthenticated
	}

	return &Claims{
		UserID:               claims.Subject,
		Name:                 claims.Name,
		Email:                claims.Email,
		Role:                 role,
		SocietyRequestStatus: entity.SocietyRequestStatus(claims.SocietyRequestStatus),
	}, nil
}
