package auth

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "bitsa", TTL: 7 * 24 * time.Hour}

	tok, err := j.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UID != "user-1" {
		t.Fatalf("unexpected uid %q", claims.UID)
	}
	exp := claims.ExpiresAt.Time
	want := time.Now().Add(7 * 24 * time.Hour)
	if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
		t.Fatalf("expiry not ~7 days out: %v", exp)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "bitsa", TTL: -2 * time.Minute}
	tok, err := j.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := j.Parse(tok); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "bitsa", TTL: time.Hour}
	tok, err := j.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("not a jwt: %q", tok)
	}
	forged := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := j.Parse(forged); err == nil {
		t.Fatal("expected tampered token to fail")
	}

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "bitsa", TTL: time.Hour}
	if _, err := other.Parse(tok); err == nil {
		t.Fatal("expected wrong-secret parse to fail")
	}
}
