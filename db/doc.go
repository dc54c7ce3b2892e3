// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Drivers

Open selects the driver from the configuration:

	conn, err := db.Open(cfg) // sqlite (default) or postgres

Both drivers are registered by this package; callers never import them.

# Schema Creation

CreateSchema initializes the credential table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

The schema is a single table:

  - users: username (primary key) and bcrypt password hash

Accounts are inserted on registration and never updated or deleted. The
primary key enforces username uniqueness at the storage layer, so two
concurrent registrations for the same name cannot both succeed.
*/
package db
