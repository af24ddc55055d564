package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Generate issues an HS256 token binding the given email as subject,
// valid for the configured ttl.
func (g *Generator) Generate(ctx context.Context, email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    g.issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify checks signature, expiry and issuer and returns the embedded email.
// Every failure mode collapses into a single error so callers cannot tell
// a forged token from an expired one.
func (g *Generator) Verify(tokenStr string) (string, error) {
	return verifyEmail(tokenStr, g.secret, g.issuer)
}

func verifyEmail(tokenStr string, secret []byte, expectedIssuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", jwt.ErrTokenUnverifiable
	}
	if expectedIssuer != "" && claims.Issuer != expectedIssuer {
		return "", jwt.ErrTokenUnverifiable
	}
	return claims.Subject, nil
}
