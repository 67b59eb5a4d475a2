// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/movie-night/auth"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type MovieHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMovieHandler(db *sql.DB, cfg cliparse.Config) *MovieHandler {
	return &MovieHandler{db: db, cfg: cfg}
}

// AddMovie handles POST /movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(auth.AdminSubject, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.AddMovieRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	movieID := uuid.NewString()

	var addedBy *string
	if req.AddedBy != "" {
		addedBy = &req.AddedBy
	}

	_, err := h.db.Exec(`
		INSERT INTO movie (id, title, added_by, watched, created_at)
		VALUES ($1, $2, $3, 0, $4)
	`, movieID, req.Title, addedBy, time.Now())

	if err != nil {
		slog.Error("failed to insert movie", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add movie")
		return
	}

	slog.Info("movie added", "movie_id", movieID, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.AddMovieResponse{
		MovieID: movieID,
	})
}

// ListMovies handles GET /movies
// Optional ?watched=true|false filters the catalog; default is everything.
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	query := `
		SELECT id, title, added_by, watched, watched_on, created_at
		FROM movie
		ORDER BY id
	`
	switch r.URL.Query().Get("watched") {
	case "true":
		query = `
			SELECT id, title, added_by, watched, watched_on, created_at
			FROM movie
			WHERE watched = 1
			ORDER BY id
		`
	case "false":
		query = `
			SELECT id, title, added_by, watched, watched_on, created_at
			FROM movie
			WHERE watched = 0
			ORDER BY id
		`
	}

	rows, err := h.db.Query(query)
	if err != nil {
		slog.Error("failed to query movies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var m models.Movie
		var watched int
		if err := rows.Scan(&m.ID, &m.Title, &m.AddedBy, &watched, &m.WatchedOn, &m.CreatedAt); err != nil {
			slog.Error("failed to scan movie", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		m.Watched = watched != 0
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read movies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, movies)
}

// MarkWatched handles POST /movies/{id}/watched
// A watched movie leaves the candidate set for future rankings.
func (h *MovieHandler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	movieID := r.PathValue("id")
	if movieID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "movie_id is required")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(auth.AdminSubject, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	watchedOn := NextWednesday(time.Now())

	result, err := h.db.Exec(`
		UPDATE movie SET watched = 1, watched_on = $1 WHERE id = $2
	`, watchedOn, movieID)
	if err != nil {
		slog.Error("failed to mark movie watched", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Movie not found")
		return
	}

	slog.Info("movie marked watched", "movie_id", movieID, "watched_on", watchedOn)

	middleware.JSONResponse(w, http.StatusOK, models.MarkWatchedResponse{
		MovieID:   movieID,
		WatchedOn: watchedOn,
	})
}
