package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Provider signs and structurally validates bearer tokens. Validation
// checks signature and expiry only; the per-row revoked flag lives in
// storage and is not consulted here.
type Provider struct {
	Secret     []byte
	Expiration time.Duration
}

func (p *Provider) GenerateToken(username, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Expiration)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.Secret)
}

func (p *Provider) ClaimsFromToken(tokenStr string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return p.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, err
	}
	return &claims, nil
}

func (p *Provider) ValidateToken(tokenStr string) bool {
	_, err := p.ClaimsFromToken(tokenStr)
	return err == nil
}
