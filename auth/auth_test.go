// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Error("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	// Hashing the same password twice produces different hashes (random salt)
	hash2, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == hash2 {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPassword(hash, "correct horse") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong horse") {
		t.Error("expected non-matching password to fail")
	}
	if CheckPassword("not-a-hash", "correct horse") {
		t.Error("expected garbage hash to fail")
	}
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty session IDs")
	}
	if a == b {
		t.Error("expected unique session IDs")
	}
}

func TestSignSessionID_Deterministic(t *testing.T) {
	sig1 := SignSessionID("session-1", "secret")
	sig2 := SignSessionID("session-1", "secret")
	if sig1 != sig2 {
		t.Error("same ID and secret should produce the same signature")
	}

	if SignSessionID("session-1", "other-secret") == sig1 {
		t.Error("different secrets should produce different signatures")
	}
	if SignSessionID("session-2", "secret") == sig1 {
		t.Error("different IDs should produce different signatures")
	}
	if strings.ContainsAny(sig1, "+/=") {
		t.Errorf("signature should be URL-safe without padding, got %q", sig1)
	}
}

func TestCookieRoundTrip(t *testing.T) {
	id := NewSessionID()
	value := EncodeCookie(id, "secret")

	got, err := DecodeCookie(value, "secret")
	if err != nil {
		t.Fatalf("DecodeCookie failed: %v", err)
	}
	if got != id {
		t.Errorf("expected session ID %q, got %q", id, got)
	}
}

func TestDecodeCookie_Invalid(t *testing.T) {
	id := NewSessionID()
	value := EncodeCookie(id, "secret")

	tests := []struct {
		name  string
		value string
	}{
		{"tampered signature", id + ".AAAA"},
		{"tampered session ID", "other-id." + strings.SplitN(value, ".", 2)[1]},
		{"wrong secret", EncodeCookie(id, "other-secret")},
		{"no separator", "justonefield"},
		{"empty value", ""},
		{"empty session ID", "." + SignSessionID("", "secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCookie(tt.value, "secret"); !errors.Is(err, ErrInvalidCookie) {
				t.Errorf("expected ErrInvalidCookie, got %v", err)
			}
		})
	}
}
