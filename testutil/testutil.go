// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/movie-night/auth"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. One connection only: each :memory: connection is its own
// database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// AdminKey returns the admin key matching GetTestConfig's salt.
func AdminKey(cfg cliparse.Config) string {
	return auth.GenerateAdminKey(auth.AdminSubject, cfg.AdminKeySalt)
}

// CreateTestMovie inserts a movie and returns its ID.
func CreateTestMovie(t *testing.T, conn *sql.DB, title string, watched bool) string {
	t.Helper()

	movieID := uuid.NewString()
	watchedInt := 0
	if watched {
		watchedInt = 1
	}
	_, err := conn.Exec(`
		INSERT INTO movie (id, title, watched, created_at)
		VALUES ($1, $2, $3, $4)
	`, movieID, title, watchedInt, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test movie: %v", err)
	}

	return movieID
}

// CreateTestVoter registers a voter and returns the id and token.
func CreateTestVoter(t *testing.T, conn *sql.DB, username string) (voterID, voterToken string) {
	t.Helper()

	voterID, _ = auth.GenerateID(16)
	voterToken, _ = auth.GenerateVoterToken()
	_, err := conn.Exec(`
		INSERT INTO voter (id, username, voter_token, created_at)
		VALUES ($1, $2, $3, $4)
	`, voterID, username, voterToken, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return voterID, voterToken
}

// SetTestAttendance records an RSVP directly.
func SetTestAttendance(t *testing.T, conn *sql.DB, voterID, eventDate string, attending bool) {
	t.Helper()

	attendingInt := 0
	if attending {
		attendingInt = 1
	}
	_, err := conn.Exec(`
		INSERT INTO attendance (voter_id, event_date, attending, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (voter_id, event_date)
		DO UPDATE SET attending = EXCLUDED.attending
	`, voterID, eventDate, attendingInt, time.Now())
	if err != nil {
		t.Fatalf("Failed to set test attendance: %v", err)
	}
}

// InsertTestPreference stores one pairwise preference directly,
// canonicalizing the pair like the handler does.
func InsertTestPreference(t *testing.T, conn *sql.DB, voterID, movieA, movieB string, preference int) {
	t.Helper()

	if movieA > movieB {
		movieA, movieB = movieB, movieA
		preference = -preference
	}
	_, err := conn.Exec(`
		INSERT INTO pairwise_preference (voter_id, movie_a_id, movie_b_id, preference, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (voter_id, movie_a_id, movie_b_id)
		DO UPDATE SET preference = EXCLUDED.preference, updated_at = EXCLUDED.updated_at
	`, voterID, movieA, movieB, preference, time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test preference: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
