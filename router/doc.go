// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the movie-night API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Movie catalog (admin writes require X-Admin-Key):

	POST /movies                - Add movie
	GET  /movies                - List movies (?watched=true|false)
	POST /movies/{id}/watched   - Mark movie watched

Voters (submission requires X-Voter-Token):

	POST /claim-username    - Claim voter identity
	POST /rsvp              - RSVP for an event date
	POST /preferences       - Submit/update one pairwise preference
	GET  /preferences/mine  - List own preferences

Results (public, ?date=YYYY-MM-DD defaults to next Wednesday):

	GET /results          - Full ranking, matrix, locked records
	GET /results/summary  - Plain-text report
	GET /matrix           - Head-to-head tallies only

# Handler Initialization

The router creates handler instances with dependency injection:

	movieHandler := handlers.NewMovieHandler(db, cfg)
	voterHandler := handlers.NewVoterHandler(db, cfg)
	preferenceHandler := handlers.NewPreferenceHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
