package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, c Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, c).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func claims(sub string, exp time.Time) Claims {
	return Claims{
		Email: "vol@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

func TestVerifier_Valid(t *testing.T) {
	v, err := NewVerifier(secret)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	tok := sign(t, jwt.SigningMethodHS256, []byte(secret), claims("vol-1", time.Now().Add(time.Hour)))

	c, err := v.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if c.UserID != "vol-1" || c.Email != "vol@example.com" {
		t.Fatalf("unexpected claims %+v", c)
	}
}

func TestVerifier_Rejects(t *testing.T) {
	v, _ := NewVerifier(secret)
	hour := time.Now().Add(time.Hour)

	cases := map[string]string{
		"expired":      sign(t, jwt.SigningMethodHS256, []byte(secret), claims("vol-1", time.Now().Add(-time.Hour))),
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), claims("vol-1", hour)),
		"wrong alg":    sign(t, jwt.SigningMethodHS512, []byte(secret), claims("vol-1", hour)),
		"missing sub":  sign(t, jwt.SigningMethodHS256, []byte(secret), claims("", hour)),
		"no exp":       sign(t, jwt.SigningMethodHS256, []byte(secret), Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "vol-1"}}),
		"garbage":      "not.a.jwt",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := v.Verify(context.Background(), tok); !errors.Is(err, ErrBadToken) {
				t.Fatalf("expected ErrBadToken, got %v", err)
			}
		})
	}

	if _, err := v.Verify(context.Background(), "  "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	if _, err := NewVerifier(" "); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
