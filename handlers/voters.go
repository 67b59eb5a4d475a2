// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/movie-night/auth"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type VoterHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoterHandler(db *sql.DB, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{db: db, cfg: cfg}
}

// voterIDFromToken resolves the X-Voter-Token header to a voter id.
// Returns sql.ErrNoRows for a missing or unknown token.
func voterIDFromToken(db *sql.DB, r *http.Request) (string, error) {
	token := r.Header.Get("X-Voter-Token")
	if token == "" {
		return "", sql.ErrNoRows
	}
	var voterID string
	err := db.QueryRow(`
		SELECT id FROM voter WHERE voter_token = $1
	`, token).Scan(&voterID)
	return voterID, err
}

// ClaimUsername handles POST /claim-username
func (h *VoterHandler) ClaimUsername(w http.ResponseWriter, r *http.Request) {
	var req models.ClaimUsernameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	// Validate username (basic validation)
	if len(req.Username) < 2 || len(req.Username) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username must be 2-50 characters")
		return
	}

	// Usernames are single-claim
	var existing string
	err := h.db.QueryRow(`
		SELECT id FROM voter WHERE username = $1
	`, req.Username).Scan(&existing)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "Username already claimed")
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	voterID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate voter ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim username")
		return
	}

	voterToken, err := auth.GenerateVoterToken()
	if err != nil {
		slog.Error("failed to generate voter token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim username")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO voter (id, username, voter_token, created_at)
		VALUES ($1, $2, $3, $4)
	`, voterID, req.Username, voterToken, time.Now())
	if err != nil {
		slog.Error("failed to insert voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim username")
		return
	}

	slog.Info("username claimed", "voter_id", voterID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.ClaimUsernameResponse{
		VoterToken: voterToken,
	})
}

// RSVP handles POST /rsvp
// An RSVP for an event date opts the voter into that date's
// computation; the default date is the next Wednesday.
func (h *VoterHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	voterID, err := voterIDFromToken(h.db, r)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token")
		return
	}
	if err != nil {
		slog.Error("failed to look up voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.RSVPRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	eventDate := req.EventDate
	if eventDate == "" {
		eventDate = NextWednesday(time.Now())
	} else if _, err := time.Parse(EventDateFormat, eventDate); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_date must be YYYY-MM-DD")
		return
	}

	attending := true
	if req.Attending != nil {
		attending = *req.Attending
	}
	attendingInt := 0
	if attending {
		attendingInt = 1
	}

	_, err = h.db.Exec(`
		INSERT INTO attendance (voter_id, event_date, attending, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (voter_id, event_date)
		DO UPDATE SET attending = EXCLUDED.attending
	`, voterID, eventDate, attendingInt, time.Now())
	if err != nil {
		slog.Error("failed to upsert attendance", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record RSVP")
		return
	}

	slog.Info("rsvp recorded", "voter_id", voterID, "event_date", eventDate, "attending", attending)

	middleware.JSONResponse(w, http.StatusOK, models.RSVPResponse{
		EventDate: eventDate,
		Attending: attending,
	})
}
