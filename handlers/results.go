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
	"github.com/danielhkuo/movie-night/report"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// eventDateFromRequest reads the optional ?date=YYYY-MM-DD query
// parameter, defaulting to the next Wednesday.
func eventDateFromRequest(r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return NextWednesday(time.Now()), true
	}
	if _, err := time.Parse(EventDateFormat, date); err != nil {
		return "", false
	}
	return date, true
}

// GetResults handles GET /results
// Returns the full computation: candidates, pairwise matrix, and the
// Ranked Pairs ordering with locked win/loss records.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	eventDate, ok := eventDateFromRequest(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	comp, err := ComputeCondorcetResults(h.db, eventDate)
	if err != nil {
		slog.Error("failed to compute results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Method:        models.MethodRankedPairs,
		EventDate:     comp.EventDate,
		VoterCount:    comp.VoterCount,
		UsedAllVoters: comp.UsedAllVoters,
		Movies:        comp.MovieRefs(),
		Matrix:        comp.Matrix,
		Rankings:      comp.Rankings(),
	})
}

// GetMatrix handles GET /matrix
// Returns just the head-to-head tallies without the final ordering.
func (h *ResultsHandler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	eventDate, ok := eventDateFromRequest(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	comp, err := ComputeCondorcetResults(h.db, eventDate)
	if err != nil {
		slog.Error("failed to compute matrix", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute matrix")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MatrixResponse{
		EventDate:  comp.EventDate,
		VoterCount: comp.VoterCount,
		Movies:     comp.MovieRefs(),
		Matrix:     comp.Matrix,
	})
}

// GetSummary handles GET /results/summary
// Returns a plain-text report: the head-to-head table plus the final
// rankings with locked win/loss records.
func (h *ResultsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	eventDate, ok := eventDateFromRequest(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	comp, err := ComputeCondorcetResults(h.db, eventDate)
	if err != nil {
		slog.Error("failed to compute summary", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	summary := report.Summary(report.Input{
		EventDate:  comp.EventDate,
		Candidates: comp.Candidates,
		Matrix:     comp.Matrix,
		Order:      comp.Order,
		Locked:     comp.Locked,
		VoterCount: comp.VoterCount,
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(summary)); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}
