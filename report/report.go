// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/movie-night/condorcet"
)

// Input bundles one finished computation for rendering.
type Input struct {
	EventDate  string
	Candidates []condorcet.Candidate
	Matrix     condorcet.Matrix
	Order      []int
	Locked     *condorcet.LockedGraph
	VoterCount int
}

const titleWidth = 12

// Summary renders a plain-text report: the head-to-head matrix
// followed by the final rankings with each movie's locked win/loss
// record. Output is deterministic for a given input.
func Summary(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Movie night %s (%s)\n\n", in.EventDate, voterLine(in.VoterCount))

	if len(in.Candidates) == 0 {
		b.WriteString("No unwatched movies to rank.\n")
		return b.String()
	}

	b.WriteString("Head-to-head (row beats column by this many votes):\n")
	writeMatrix(&b, in.Candidates, in.Matrix)

	b.WriteString("\nFinal rankings (Tideman / Ranked Pairs):\n")
	for pos, idx := range in.Order {
		c := in.Candidates[idx]
		fmt.Fprintf(&b, "  %4s  %-30s  W:%d L:%d\n",
			humanize.Ordinal(pos+1), c.Label, in.Locked.Wins(idx), in.Locked.Losses(idx))
	}

	return b.String()
}

func voterLine(n int) string {
	if n == 1 {
		return "1 voter"
	}
	return fmt.Sprintf("%d voters", n)
}

func writeMatrix(b *strings.Builder, candidates []condorcet.Candidate, m condorcet.Matrix) {
	header := strings.Repeat(" ", titleWidth+2)
	for _, c := range candidates {
		header += fmt.Sprintf("%6s", clip(c.Label, 5))
	}
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")

	for i, c := range candidates {
		row := fmt.Sprintf("%-*s |", titleWidth, clip(c.Label, titleWidth))
		for j := range candidates {
			if i == j {
				row += "   -  "
			} else {
				row += fmt.Sprintf("%4d  ", m[i][j])
			}
		}
		b.WriteString(row + "\n")
	}
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
