// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/movie-night/condorcet"
	"github.com/danielhkuo/movie-night/models"
)

// CondorcetComputation is the full output of one ranking run: the
// candidate list (unwatched movies in id order, which fixes the matrix
// indices), the pairwise matrix, the final order, and the locked graph
// that justifies it.
type CondorcetComputation struct {
	EventDate     string
	Candidates    []condorcet.Candidate
	Matrix        condorcet.Matrix
	Order         []int
	Locked        *condorcet.LockedGraph
	VoterCount    int
	UsedAllVoters bool
}

// ComputeCondorcetResults ranks all unwatched movies for the given
// event date. Participating voters are the attendees who RSVP'd for
// that date; if nobody has, every voter who ever submitted a
// preference participates instead. Each participant's pairwise
// preferences are resolved into a personal ranking, summed into the
// pairwise matrix, and resolved into one global order with Ranked
// Pairs.
func ComputeCondorcetResults(db *sql.DB, eventDate string) (*CondorcetComputation, error) {
	candidates, err := getUnwatchedMovies(db)
	if err != nil {
		return nil, fmt.Errorf("failed to get unwatched movies: %w", err)
	}

	voterIDs, usedAll, err := getParticipants(db, eventDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	target := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		target[c.ID] = true
	}

	statementsByVoter := make(map[string][]condorcet.PreferenceStatement)
	for _, voterID := range voterIDs {
		statements, err := getVoterPreferences(db, voterID)
		if err != nil {
			return nil, fmt.Errorf("failed to get preferences for voter %s: %w", voterID, err)
		}
		if len(statements) > 0 {
			statementsByVoter[voterID] = statements
		}
	}

	rankings := condorcet.ResolveAllVoterRankings(statementsByVoter, target)
	matrix := condorcet.BuildMatrix(candidates, rankings)
	order, locked := condorcet.RankedPairs(candidates, matrix)

	return &CondorcetComputation{
		EventDate:     eventDate,
		Candidates:    candidates,
		Matrix:        matrix,
		Order:         order,
		Locked:        locked,
		VoterCount:    len(statementsByVoter),
		UsedAllVoters: usedAll,
	}, nil
}

// MovieRefs returns the candidate list in matrix index order.
func (c *CondorcetComputation) MovieRefs() []models.MovieRef {
	refs := make([]models.MovieRef, len(c.Candidates))
	for i, cand := range c.Candidates {
		refs[i] = models.MovieRef{ID: cand.ID, Title: cand.Label}
	}
	return refs
}

// Rankings returns the final ordering as 1-indexed entries with each
// movie's locked win/loss record.
func (c *CondorcetComputation) Rankings() []models.RankingEntry {
	entries := make([]models.RankingEntry, len(c.Order))
	for pos, idx := range c.Order {
		entries[pos] = models.RankingEntry{
			Rank:         pos + 1,
			MovieID:      c.Candidates[idx].ID,
			Title:        c.Candidates[idx].Label,
			LockedWins:   c.Locked.Wins(idx),
			LockedLosses: c.Locked.Losses(idx),
		}
	}
	return entries
}

// getUnwatchedMovies retrieves the target candidate set. The id
// ordering is the canonical matrix index ordering.
func getUnwatchedMovies(db *sql.DB) ([]condorcet.Candidate, error) {
	rows, err := db.Query(`
		SELECT id, title FROM movie WHERE watched = 0 ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []condorcet.Candidate
	for rows.Next() {
		var c condorcet.Candidate
		if err := rows.Scan(&c.ID, &c.Label); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

// getParticipants returns the voter ids taking part in the
// computation: attendees for the event date, or every voter with at
// least one stored preference when nobody RSVP'd.
func getParticipants(db *sql.DB, eventDate string) ([]string, bool, error) {
	attendees, err := queryIDs(db, `
		SELECT voter_id FROM attendance
		WHERE event_date = $1 AND attending = 1
		ORDER BY voter_id
	`, eventDate)
	if err != nil {
		return nil, false, err
	}
	if len(attendees) > 0 {
		return attendees, false, nil
	}

	all, err := queryIDs(db, `
		SELECT DISTINCT voter_id FROM pairwise_preference ORDER BY voter_id
	`)
	if err != nil {
		return nil, false, err
	}
	return all, true, nil
}

func queryIDs(db *sql.DB, query string, args ...interface{}) ([]string, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// getVoterPreferences retrieves one voter's pairwise statements in
// stable (movie pair) order.
func getVoterPreferences(db *sql.DB, voterID string) ([]condorcet.PreferenceStatement, error) {
	rows, err := db.Query(`
		SELECT movie_a_id, movie_b_id, preference
		FROM pairwise_preference
		WHERE voter_id = $1
		ORDER BY movie_a_id, movie_b_id
	`, voterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []condorcet.PreferenceStatement
	for rows.Next() {
		st := condorcet.PreferenceStatement{VoterID: voterID}
		if err := rows.Scan(&st.ItemA, &st.ItemB, &st.Preference); err != nil {
			return nil, err
		}
		statements = append(statements, st)
	}

	return statements, rows.Err()
}
