// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

import "sort"

// Pairs extracts the decided pairwise contests from a win-count
// matrix, sorted by descending margin, then descending total votes. A
// pair whose two counts are exactly equal produces no record. The sort
// is stable, so records that tie on both keys keep the generation
// order (ascending i, then j > i), which makes the overall result
// deterministic for a fixed candidate ordering.
func Pairs(m Matrix) []Pair {
	n := len(m)
	var pairs []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case m[i][j] > m[j][i]:
				pairs = append(pairs, Pair{Winner: i, Loser: j, Margin: m[i][j] - m[j][i], TotalVotes: m[i][j]})
			case m[j][i] > m[i][j]:
				pairs = append(pairs, Pair{Winner: j, Loser: i, Margin: m[j][i] - m[i][j], TotalVotes: m[j][i]})
			}
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].Margin != pairs[b].Margin {
			return pairs[a].Margin > pairs[b].Margin
		}
		return pairs[a].TotalVotes > pairs[b].TotalVotes
	})

	return pairs
}

// RankedPairs produces the final ordering from a pairwise matrix using
// the Tideman / Ranked Pairs method. Decided pairs are locked in
// descending strength order, skipping any that would close a cycle
// through already-locked edges. The locked graph is then topologically
// sorted; whenever several candidates have no remaining locked loss,
// they are emitted in label order (lexicographic ascending). The
// returned order is a permutation of all candidate positions, best
// first, for any matrix input including the zero matrix.
func RankedPairs(candidates []Candidate, m Matrix) ([]int, *LockedGraph) {
	n := len(candidates)

	locked := NewLockedGraph()
	for _, p := range Pairs(m) {
		locked.Lock(p.Winner, p.Loser)
	}

	inDegree := make([]int, n)
	for i := 0; i < n; i++ {
		for _, loser := range locked.Losers(i) {
			inDegree[loser]++
		}
	}

	byLabel := func(ids []int) {
		sort.Slice(ids, func(a, b int) bool {
			return candidates[ids[a]].Label < candidates[ids[b]].Label
		})
	}

	order := make([]int, 0, n)
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	for len(remaining) > 0 {
		var sources, rest []int
		for _, i := range remaining {
			if inDegree[i] == 0 {
				sources = append(sources, i)
			} else {
				rest = append(rest, i)
			}
		}
		if len(sources) == 0 {
			// Cannot happen when the locked graph is acyclic; kept as
			// a defensive fallback with the same alphabetical rule.
			byLabel(rest)
			order = append(order, rest...)
			break
		}
		byLabel(sources)
		for _, s := range sources {
			order = append(order, s)
			for _, loser := range locked.Losers(s) {
				inDegree[loser]--
			}
		}
		remaining = rest
	}

	return order, locked
}
