// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - movie: The movie catalog with the watched flag
  - voter: Registered voters and their tokens
  - attendance: RSVPs per voter per event date
  - pairwise_preference: One preference per voter per movie pair

# Relationships

	voter 1──* attendance
	voter 1──* pairwise_preference
	movie 1──* pairwise_preference (twice, as movie_a and movie_b)

All foreign keys use ON DELETE CASCADE.

The SQL sticks to the subset shared by SQLite and PostgreSQL so either
driver can run it unchanged.
*/
package db
