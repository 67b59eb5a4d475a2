// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/handlers"
	"github.com/danielhkuo/movie-night/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	movieHandler := handlers.NewMovieHandler(db, cfg)
	voterHandler := handlers.NewVoterHandler(db, cfg)
	preferenceHandler := handlers.NewPreferenceHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Movie catalog (admin operations except listing)
	mux.HandleFunc("POST /movies", middleware.WithLogging(movieHandler.AddMovie))
	mux.HandleFunc("GET /movies", middleware.WithLogging(movieHandler.ListMovies))
	mux.HandleFunc("POST /movies/{id}/watched", middleware.WithLogging(movieHandler.MarkWatched))

	// Voter identity and attendance
	mux.HandleFunc("POST /claim-username", middleware.WithLogging(voterHandler.ClaimUsername))
	mux.HandleFunc("POST /rsvp", middleware.WithLogging(voterHandler.RSVP))

	// Pairwise preferences (requires X-Voter-Token)
	mux.HandleFunc("POST /preferences", middleware.WithLogging(preferenceHandler.SubmitPreference))
	mux.HandleFunc("GET /preferences/mine", middleware.WithLogging(preferenceHandler.GetMyPreferences))

	// Results (public)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/summary", middleware.WithLogging(resultsHandler.GetSummary))
	mux.HandleFunc("GET /matrix", middleware.WithLogging(resultsHandler.GetMatrix))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("movie-night API v1"))
	})

	return mux
}
