// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags override environment variables, which override defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - Port (-p, PORT): server port, default 5000
  - DatabaseURL (-d, DATABASE_URL): sqlite file path or postgres
    connection string, default "users.db"
  - DatabaseType (-t, DATABASE_TYPE): "sqlite" (default) or "postgres"
  - SecretKey (-secret, SECRET_KEY): session cookie signing secret,
    falls back to an insecure development default

Unlike the database settings, the secret key never fails parsing; the
caller decides how loudly to complain about the default.
*/
package cliparse
