// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

// BuildMatrix aggregates all voters' personal rankings into a pairwise
// win-count matrix over the given candidate list. For a voter and an
// ordered pair (i, j): if both are ranked, i scores when its rank
// number is strictly lower; if i is ranked and j is not, i scores
// unconditionally, so a ranked candidate always beats an unranked one
// on that voter's ballot. No other case scores, and no normalization or
// weighting is applied. Voter iteration order is irrelevant: cells are
// plain commutative sums.
func BuildMatrix(candidates []Candidate, rankings map[string]VoterRanking) Matrix {
	n := len(candidates)
	m := NewMatrix(n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for _, vr := range rankings {
				rankI, iRanked := vr.Ranks[candidates[i].ID]
				rankJ, jRanked := vr.Ranks[candidates[j].ID]
				switch {
				case iRanked && jRanked:
					if rankI < rankJ {
						m[i][j]++
					}
				case iRanked:
					m[i][j]++
				}
			}
		}
	}

	return m
}
