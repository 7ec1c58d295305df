package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256-signed identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token embedding the identity claims with an expiry ttl out.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"role":  identity.Role,
		"exp":   s.now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// It never consults the user store: claims are trusted as signed.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("verify token: %w", err)
	}
	if !tkn.Valid {
		return domain.Identity{}, jwt.ErrTokenUnverifiable
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return domain.Identity{}, jwt.ErrTokenInvalidSubject
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return domain.Identity{ID: int64(sub), Email: email, Role: role}, nil
}
