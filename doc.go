// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the movie-night API server.

Movie Night ranks a movie club's unwatched catalog from everyone's
pairwise preferences ("Alien over Heat") using the Condorcet /
Ranked Pairs (Tideman) method, scoped to whoever RSVP'd for the next
Wednesday showing.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:movies.db ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3324 -d file:movies.db -admin-salt secret

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3324)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

# Architecture

The server uses a handler-based architecture with dependency injection:

  - condorcet: The pure three-stage ranking pipeline
  - handlers: HTTP request handlers (movies, voters, preferences, results)
  - report: Plain-text result rendering
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Token generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
