// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

// Candidate is one item being ranked. ID is the stable key used
// throughout the computation; Label is only consulted for the
// alphabetical tie-breaks in the final ordering.
type Candidate struct {
	ID    string
	Label string
}

// PreferenceStatement is a single voter's judgment on one pair of
// candidates. Preference > 0 means ItemA is preferred over ItemB,
// Preference < 0 means ItemB over ItemA, and 0 is an explicit tie.
type PreferenceStatement struct {
	VoterID    string
	ItemA      string
	ItemB      string
	Preference int
}

// VoterRanking is a single voter's resolved personal ranking.
// Ranks maps candidate ID to a 1-indexed rank (lower = better);
// candidates in one topological layer share a rank. Unranked holds the
// compared candidates that could not be placed: members of smaller
// disconnected components, or participants in a preference cycle.
// The two sets are disjoint.
type VoterRanking struct {
	Ranks    map[string]int
	Unranked map[string]bool
}

// Compared reports whether the voter compared the given candidate at
// all, ranked or not.
func (vr VoterRanking) Compared(id string) bool {
	_, ok := vr.Ranks[id]
	return ok || vr.Unranked[id]
}

// Matrix is an N×N pairwise win-count table indexed by candidate
// position: Matrix[i][j] is the number of voters whose personal
// rankings put candidate i ahead of candidate j. The diagonal is
// always zero. It is not antisymmetric: both Matrix[i][j] and
// Matrix[j][i] may be positive when voters disagree, and both may be
// zero when nobody compared the pair.
type Matrix [][]int

// NewMatrix returns an all-zero n×n matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

// Pair is one strictly-decided pairwise contest: Winner's matrix count
// against Loser exceeds the reverse count. Margin is the difference,
// TotalVotes the winning side's count. Indices refer to positions in
// the candidate list the matrix was built over.
type Pair struct {
	Winner     int
	Loser      int
	Margin     int
	TotalVotes int
}

// LockedGraph is the acyclic winner→loser graph built by RankedPairs.
// Edges are only ever added, never removed, and an edge that would
// close a cycle through already-locked edges is refused.
type LockedGraph struct {
	losers map[int][]int // winner → losers, in lock order
}

// NewLockedGraph returns an empty locked graph.
func NewLockedGraph() *LockedGraph {
	return &LockedGraph{losers: make(map[int][]int)}
}

// Lock adds the edge winner→loser if it does not create a cycle.
// It reports whether the edge was accepted.
func (g *LockedGraph) Lock(winner, loser int) bool {
	if g.Reaches(loser, winner) {
		return false
	}
	g.losers[winner] = append(g.losers[winner], loser)
	return true
}

// Reaches reports whether `to` is reachable from `from` over locked
// edges. Traversal is iterative; candidate counts are unbounded and
// stack depth must not depend on them.
func (g *LockedGraph) Reaches(from, to int) bool {
	visited := make(map[int]bool)
	stack := []int{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		stack = append(stack, g.losers[cur]...)
	}
	return false
}

// Losers returns the locked losers of the given candidate, in the
// order the edges were locked. The returned slice is shared; callers
// must not modify it.
func (g *LockedGraph) Losers(winner int) []int {
	return g.losers[winner]
}

// Wins returns the number of locked edges won by candidate i.
func (g *LockedGraph) Wins(i int) int {
	return len(g.losers[i])
}

// Losses returns the number of locked edges lost by candidate i.
func (g *LockedGraph) Losses(i int) int {
	n := 0
	for _, losers := range g.losers {
		for _, l := range losers {
			if l == i {
				n++
			}
		}
	}
	return n
}
