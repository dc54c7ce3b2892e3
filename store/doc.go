// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the credential table behind a repository
interface.

# Interface

UserStore exposes the three account operations the app needs:

	Exists(ctx, username) (bool, error)
	Create(ctx, username, password) error // ErrDuplicateUser when taken
	Verify(ctx, username, password) (bool, error)

Create hashes the password with bcrypt before insertion; Verify compares
against the stored hash and never distinguishes an unknown user from a
wrong password.

# Implementations

  - SQLUserStore: database/sql over sqlite or postgres. Duplicate
    usernames are rejected by the primary key, so a concurrent Create
    race cannot produce two rows.
  - MemoryUserStore: map-backed fake for handler tests.
*/
package store
