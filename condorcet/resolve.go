// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

import "golang.org/x/sync/errgroup"

// ResolveAllVoterRankings resolves every voter's personal ranking.
// Voters are independent of each other, so each one runs in its own
// goroutine; every goroutine writes only its own result slot. Voters
// whose statements reference no target candidate still get an entry
// (an empty ranking contributes nothing to the matrix).
func ResolveAllVoterRankings(statementsByVoter map[string][]PreferenceStatement, target map[string]bool) map[string]VoterRanking {
	voterIDs := make([]string, 0, len(statementsByVoter))
	for id := range statementsByVoter {
		voterIDs = append(voterIDs, id)
	}

	results := make([]VoterRanking, len(voterIDs))
	var g errgroup.Group
	for i, id := range voterIDs {
		g.Go(func() error {
			results[i] = ResolveVoterRanking(statementsByVoter[id], target)
			return nil
		})
	}
	// Resolution itself never fails, so the group error is always nil.
	_ = g.Wait()

	rankings := make(map[string]VoterRanking, len(voterIDs))
	for i, id := range voterIDs {
		rankings[id] = results[i]
	}
	return rankings
}
