// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the MBTI quiz server.

The server authenticates users against a local credential table, serves a
fixed 16-question personality questionnaire, and computes a four-letter
type label with per-dimension percentage scores. Career and
learning-style suggestions are looked up by label.

# Starting the Server

The server runs on sqlite out of the box:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings (flags override environment variables):

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): sqlite file path or postgres connection string
    (default: users.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - SECRET_KEY (-secret): Secret for session cookie signing. A default
    development value is used when unset; set it in production.

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (HTML pages, quiz JSON API)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging, JSON helpers, login gate
  - models: Request/response types
  - mbti: Questionnaire catalog, scoring engine, career lookups
  - session: Signed-cookie session state
  - store: Credential store (sqlite/postgres or in-memory)
  - auth: Password hashing and cookie signing
  - db: Schema creation and driver selection
  - cliparse: Configuration parsing
  - templates: Embedded HTML templates

The offline training pipeline lives in train/ with its entry point at
cmd/train. It produces classifier artifacts that the serving path does
not consume.

See package documentation for each component.
*/
package main
