// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
)

// ErrDuplicateUser is returned by Create when the username is taken.
var ErrDuplicateUser = errors.New("user already exists")

// UserStore is the credential table. Accounts are created once and
// never updated or deleted.
type UserStore interface {
	// Exists reports whether an account with that exact username is present.
	Exists(ctx context.Context, username string) (bool, error)
	// Create hashes the password and inserts the account. Returns
	// ErrDuplicateUser if the username is taken; uniqueness is enforced
	// by the storage layer, so concurrent creates cannot both succeed.
	Create(ctx context.Context, username, password string) error
	// Verify reports whether the username exists and the password
	// matches its stored hash. Unknown user and wrong password are not
	// distinguished.
	Verify(ctx context.Context, username, password string) (bool, error)
}
