// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// HashPassword hashes a plaintext password with bcrypt.
// Plaintext is never stored or compared directly.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the hash.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// NewSessionID creates a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// SignSessionID creates an HMAC signature for a session ID
// This is deterministic and verifiable
func SignSessionID(sessionID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner cookie values
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// EncodeCookie packs a session ID and its signature into a cookie value
func EncodeCookie(sessionID, secret string) string {
	return sessionID + "." + SignSessionID(sessionID, secret)
}

// DecodeCookie validates a cookie value and returns the session ID.
// Tampered or malformed values return ErrInvalidCookie.
func DecodeCookie(value, secret string) (string, error) {
	sessionID, sig, ok := strings.Cut(value, ".")
	if !ok || sessionID == "" {
		return "", ErrInvalidCookie
	}
	expected := SignSessionID(sessionID, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidCookie
	}
	return sessionID, nil
}
