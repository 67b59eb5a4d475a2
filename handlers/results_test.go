// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/movie-night/models"
	"github.com/danielhkuo/movie-night/testutil"
)

func movieIndex(t *testing.T, movies []models.MovieRef, movieID string) int {
	t.Helper()
	for i, m := range movies {
		if m.ID == movieID {
			return i
		}
	}
	t.Fatalf("movie %s not in response", movieID)
	return -1
}

func TestGetResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, testutil.GetTestConfig())

	m1 := testutil.CreateTestMovie(t, conn, "M1", false)
	m2 := testutil.CreateTestMovie(t, conn, "M2", false)
	m3 := testutil.CreateTestMovie(t, conn, "M3", false)

	v1, _ := testutil.CreateTestVoter(t, conn, "v1")
	v2, _ := testutil.CreateTestVoter(t, conn, "v2")

	// v1: M1 > M2 > M3, v2: M1 > M3 and M2 tied with M3.
	testutil.InsertTestPreference(t, conn, v1, m1, m2, 1)
	testutil.InsertTestPreference(t, conn, v1, m2, m3, 1)
	testutil.InsertTestPreference(t, conn, v2, m1, m3, 1)
	testutil.InsertTestPreference(t, conn, v2, m2, m3, 0)

	req := testutil.MakeRequest("GET", "/results?date=2026-09-02", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Method != models.MethodRankedPairs {
		t.Errorf("method = %s, want %s", resp.Method, models.MethodRankedPairs)
	}
	if resp.EventDate != "2026-09-02" {
		t.Errorf("event_date = %s, want 2026-09-02", resp.EventDate)
	}
	if resp.VoterCount != 2 {
		t.Errorf("voter_count = %d, want 2", resp.VoterCount)
	}
	if !resp.UsedAllVoters {
		t.Error("expected used_all_voters with no RSVPs")
	}
	if len(resp.Movies) != 3 || len(resp.Matrix) != 3 || len(resp.Rankings) != 3 {
		t.Fatalf("got %d movies, %d matrix rows, %d rankings, want 3 each",
			len(resp.Movies), len(resp.Matrix), len(resp.Rankings))
	}

	wantOrder := []string{"M1", "M2", "M3"}
	for i, entry := range resp.Rankings {
		if entry.Title != wantOrder[i] {
			t.Errorf("rank %d = %s, want %s", i+1, entry.Title, wantOrder[i])
		}
		if entry.Rank != i+1 {
			t.Errorf("rankings[%d].Rank = %d, want %d", i, entry.Rank, i+1)
		}
	}
	if resp.Rankings[0].LockedWins != 2 || resp.Rankings[0].LockedLosses != 0 {
		t.Errorf("winner record W:%d L:%d, want W:2 L:0",
			resp.Rankings[0].LockedWins, resp.Rankings[0].LockedLosses)
	}
}

func TestGetResultsNoCandidates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Movies) != 0 || len(resp.Rankings) != 0 {
		t.Errorf("expected empty results, got %d movies, %d rankings",
			len(resp.Movies), len(resp.Rankings))
	}
}

func TestGetResultsZeroVotersAlphabetical(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, testutil.GetTestConfig())

	testutil.CreateTestMovie(t, conn, "Zodiac", false)
	testutil.CreateTestMovie(t, conn, "Alien", false)
	testutil.CreateTestMovie(t, conn, "Heat", false)

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VoterCount != 0 {
		t.Errorf("voter_count = %d, want 0", resp.VoterCount)
	}

	// With no preferences everything ties; ordering falls back to title.
	wantOrder := []string{"Alien", "Heat", "Zodiac"}
	for i, entry := range resp.Rankings {
		if entry.Title != wantOrder[i] {
			t.Errorf("rank %d = %s, want %s", i+1, entry.Title, wantOrder[i])
		}
	}
}

func TestGetResultsBadDate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/results?date=tonight", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestGetMatrix(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, testutil.GetTestConfig())

	m1 := testutil.CreateTestMovie(t, conn, "M1", false)
	m2 := testutil.CreateTestMovie(t, conn, "M2", false)
	v1, _ := testutil.CreateTestVoter(t, conn, "v1")
	testutil.InsertTestPreference(t, conn, v1, m1, m2, 1)

	req := testutil.MakeRequest("GET", "/matrix", nil, nil)
	w := httptest.NewRecorder()
	handler.GetMatrix(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.MatrixResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Matrix) != 2 {
		t.Fatalf("got %d matrix rows, want 2", len(resp.Matrix))
	}

	i1 := movieIndex(t, resp.Movies, m1)
	i2 := movieIndex(t, resp.Movies, m2)
	if resp.Matrix[i1][i2] != 1 || resp.Matrix[i2][i1] != 0 {
		t.Errorf("matrix[M1][M2] = %d, matrix[M2][M1] = %d, want 1 and 0",
			resp.Matrix[i1][i2], resp.Matrix[i2][i1])
	}
}

func TestGetSummary(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, testutil.GetTestConfig())

	m1 := testutil.CreateTestMovie(t, conn, "Alien", false)
	m2 := testutil.CreateTestMovie(t, conn, "Heat", false)
	v1, _ := testutil.CreateTestVoter(t, conn, "v1")
	testutil.InsertTestPreference(t, conn, v1, m1, m2, 1)

	req := testutil.MakeRequest("GET", "/results/summary?date=2026-09-02", nil, nil)
	w := httptest.NewRecorder()
	handler.GetSummary(w, req)

	testutil.AssertStatus(t, w, 200)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %s, want text/plain", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"2026-09-02", "Alien", "Heat", "1st"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary missing %q:\n%s", want, body)
		}
	}
}
