// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type PreferenceHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPreferenceHandler(db *sql.DB, cfg cliparse.Config) *PreferenceHandler {
	return &PreferenceHandler{db: db, cfg: cfg}
}

// SubmitPreference handles POST /preferences
// One preference per voter per unordered movie pair; resubmitting the
// same pair replaces the stored judgment. The pair is canonicalized
// (lower movie id first, sign flipped accordingly) so both orderings
// of the same pair hit the same row.
func (h *PreferenceHandler) SubmitPreference(w http.ResponseWriter, r *http.Request) {
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

	var req models.SubmitPreferenceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MovieAID == "" || req.MovieBID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "movie_a_id and movie_b_id are required")
		return
	}
	if req.MovieAID == req.MovieBID {
		middleware.ErrorResponse(w, http.StatusBadRequest, "cannot compare a movie with itself")
		return
	}

	// Both movies must exist
	var count int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM movie WHERE id = $1 OR id = $2
	`, req.MovieAID, req.MovieBID).Scan(&count)
	if err != nil {
		slog.Error("failed to check movies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count != 2 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Movie not found")
		return
	}

	movieA, movieB, pref := req.MovieAID, req.MovieBID, req.Preference
	if movieA > movieB {
		movieA, movieB = movieB, movieA
		pref = -pref
	}

	_, err = h.db.Exec(`
		INSERT INTO pairwise_preference (voter_id, movie_a_id, movie_b_id, preference, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (voter_id, movie_a_id, movie_b_id)
		DO UPDATE SET preference = EXCLUDED.preference, updated_at = EXCLUDED.updated_at
	`, voterID, movieA, movieB, pref, time.Now())
	if err != nil {
		slog.Error("failed to upsert preference", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save preference")
		return
	}

	slog.Info("preference saved", "voter_id", voterID, "movie_a", movieA, "movie_b", movieB)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitPreferenceResponse{
		Message: "Preference saved",
	})
}

// GetMyPreferences handles GET /preferences/mine
func (h *PreferenceHandler) GetMyPreferences(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.db.Query(`
		SELECT movie_a_id, movie_b_id, preference
		FROM pairwise_preference
		WHERE voter_id = $1
		ORDER BY movie_a_id, movie_b_id
	`, voterID)
	if err != nil {
		slog.Error("failed to query preferences", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	prefs := []models.Preference{}
	for rows.Next() {
		var p models.Preference
		if err := rows.Scan(&p.MovieAID, &p.MovieBID, &p.Preference); err != nil {
			slog.Error("failed to scan preference", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read preferences", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, prefs)
}
