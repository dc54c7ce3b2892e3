// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session cookie signing.

# Passwords

Passwords are stored as bcrypt hashes, never plaintext:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

# Session Cookies

Session IDs are random UUIDs; the cookie value carries the ID with an
HMAC-SHA256 signature so clients cannot forge or swap sessions:

	value := auth.EncodeCookie(auth.NewSessionID(), secret)
	id, err := auth.DecodeCookie(value, secret)

DecodeCookie returns ErrInvalidCookie for malformed or tampered values;
callers treat that as an anonymous visitor, not an error page.
*/
package auth
