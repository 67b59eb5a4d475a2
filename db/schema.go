// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Movies
CREATE TABLE IF NOT EXISTS movie (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    added_by TEXT,
    watched INTEGER NOT NULL DEFAULT 0,
    watched_on TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_movie_watched ON movie(watched);

-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    voter_token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voter_token ON voter(voter_token);

-- Attendance (one RSVP per voter per event date)
CREATE TABLE IF NOT EXISTS attendance (
    voter_id TEXT NOT NULL REFERENCES voter(id) ON DELETE CASCADE,
    event_date TEXT NOT NULL,
    attending INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (voter_id, event_date)
);

CREATE INDEX IF NOT EXISTS idx_attendance_event ON attendance(event_date);

-- Pairwise preferences. One row per voter per unordered movie pair;
-- handlers canonicalize so that movie_a_id < movie_b_id before writing.
CREATE TABLE IF NOT EXISTS pairwise_preference (
    voter_id TEXT NOT NULL REFERENCES voter(id) ON DELETE CASCADE,
    movie_a_id TEXT NOT NULL REFERENCES movie(id) ON DELETE CASCADE,
    movie_b_id TEXT NOT NULL REFERENCES movie(id) ON DELETE CASCADE,
    preference INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (voter_id, movie_a_id, movie_b_id)
);

CREATE INDEX IF NOT EXISTS idx_preference_voter ON pairwise_preference(voter_id);
`
