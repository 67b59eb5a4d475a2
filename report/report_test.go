// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"strings"
	"testing"

	"github.com/danielhkuo/movie-night/condorcet"
)

func sampleInput() Input {
	candidates := []condorcet.Candidate{
		{ID: "m1", Label: "Alien"},
		{ID: "m2", Label: "Heat"},
		{ID: "m3", Label: "Zodiac"},
	}
	matrix := condorcet.Matrix{
		{0, 2, 2},
		{0, 0, 1},
		{0, 1, 0},
	}
	order, locked := condorcet.RankedPairs(candidates, matrix)
	return Input{
		EventDate:  "2026-09-02",
		Candidates: candidates,
		Matrix:     matrix,
		Order:      order,
		Locked:     locked,
		VoterCount: 2,
	}
}

func TestSummaryContainsRankingsAndRecords(t *testing.T) {
	out := Summary(sampleInput())

	for _, want := range []string{
		"2026-09-02",
		"2 voters",
		"Head-to-head",
		"Final rankings",
		"1st",
		"2nd",
		"3rd",
		"Alien",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	// Alien beats both others 2-0, so its locked record is W:2 L:0.
	if !strings.Contains(out, "W:2 L:0") {
		t.Errorf("summary missing Alien's locked record:\n%s", out)
	}
}

func TestSummaryRankingOrder(t *testing.T) {
	out := Summary(sampleInput())

	// Best-first: Alien, then the tied pair alphabetically.
	alien := strings.Index(out, "1st")
	if alien == -1 {
		t.Fatalf("no 1st entry in summary:\n%s", out)
	}
	line := out[alien:]
	line = line[:strings.Index(line, "\n")]
	if !strings.Contains(line, "Alien") {
		t.Errorf("expected Alien ranked 1st, got line %q", line)
	}
}

func TestSummaryNoCandidates(t *testing.T) {
	out := Summary(Input{EventDate: "2026-09-02", VoterCount: 0})
	if !strings.Contains(out, "No unwatched movies") {
		t.Errorf("expected empty-catalog message, got:\n%s", out)
	}
	if !strings.Contains(out, "0 voters") {
		t.Errorf("expected voter count, got:\n%s", out)
	}
}

func TestSummarySingleVoterGrammar(t *testing.T) {
	in := sampleInput()
	in.VoterCount = 1
	if out := Summary(in); !strings.Contains(out, "1 voter") || strings.Contains(out, "1 voters") {
		t.Errorf("expected singular voter line, got:\n%s", out)
	}
}

func TestSummaryDeterministic(t *testing.T) {
	first := Summary(sampleInput())
	for i := 0; i < 5; i++ {
		if got := Summary(sampleInput()); got != first {
			t.Fatalf("summary not deterministic:\n%s\nvs\n%s", got, first)
		}
	}
}
