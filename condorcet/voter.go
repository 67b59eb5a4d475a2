// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

// ResolveVoterRanking turns one voter's pairwise statements into a
// personal ranking over the target candidate set.
//
// Only statements whose both endpoints are in target are considered.
// Candidates the voter compared are collected in first-appearance
// order, and that order drives every traversal below, so the result is
// reproducible for identical input.
//
// The voter's preferences form a directed graph (winner → loser). The
// undirected version of the same comparisons determines connectivity:
// only the largest connected component is ranked (size ties go to the
// component discovered first), everything else is unranked. Within the
// main component a layered topological sort assigns ranks, one rank
// number per layer, so mutually unordered candidates share a rank. If
// the voter's preferences contain a true cycle, the candidates still
// unprocessed when no source remains are moved to unranked rather than
// ordered arbitrarily.
func ResolveVoterRanking(statements []PreferenceStatement, target map[string]bool) VoterRanking {
	vr := VoterRanking{
		Ranks:    make(map[string]int),
		Unranked: make(map[string]bool),
	}
	if len(statements) == 0 {
		return vr
	}

	// Candidates this voter compared, restricted to the target set,
	// in order of first appearance.
	var compared []string
	seen := make(map[string]bool)
	for _, st := range statements {
		if !target[st.ItemA] || !target[st.ItemB] {
			continue
		}
		for _, id := range [2]string{st.ItemA, st.ItemB} {
			if !seen[id] {
				seen[id] = true
				compared = append(compared, id)
			}
		}
	}
	if len(compared) == 0 {
		return vr
	}

	// Directed preference graph. Only the first directed edge per
	// ordered pair counts; later duplicates must not inflate
	// in-degrees.
	succ := make(map[string][]string)
	hasEdge := make(map[string]map[string]bool)
	addEdge := func(winner, loser string) {
		if hasEdge[winner][loser] {
			return
		}
		if hasEdge[winner] == nil {
			hasEdge[winner] = make(map[string]bool)
		}
		hasEdge[winner][loser] = true
		succ[winner] = append(succ[winner], loser)
	}

	// Undirected comparison graph, used only for connectivity.
	adj := make(map[string][]string)

	for _, st := range statements {
		if !target[st.ItemA] || !target[st.ItemB] {
			continue
		}
		switch {
		case st.Preference > 0:
			addEdge(st.ItemA, st.ItemB)
		case st.Preference < 0:
			addEdge(st.ItemB, st.ItemA)
		default:
			// Explicit tie, no directed edge.
		}
		adj[st.ItemA] = append(adj[st.ItemA], st.ItemB)
		adj[st.ItemB] = append(adj[st.ItemB], st.ItemA)
	}

	// Connected components of the comparison graph, discovered in
	// first-appearance order with an explicit stack.
	visited := make(map[string]bool)
	var components [][]string
	for _, start := range compared {
		if visited[start] {
			continue
		}
		var component []string
		stack := []string{start}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[node] {
				continue
			}
			visited[node] = true
			component = append(component, node)
			for _, nb := range adj[node] {
				if !visited[nb] {
					stack = append(stack, nb)
				}
			}
		}
		components = append(components, component)
	}

	// Largest component wins; a size tie keeps the one discovered
	// first.
	main := components[0]
	for _, c := range components[1:] {
		if len(c) > len(main) {
			main = c
		}
	}
	inMain := make(map[string]bool, len(main))
	for _, id := range main {
		inMain[id] = true
	}
	for _, id := range compared {
		if !inMain[id] {
			vr.Unranked[id] = true
		}
	}

	// In-degrees restricted to edges inside the main component.
	inDegree := make(map[string]int, len(main))
	for _, id := range main {
		inDegree[id] = 0
	}
	for _, from := range main {
		for _, to := range succ[from] {
			if inMain[to] {
				inDegree[to]++
			}
		}
	}

	// Layered Kahn: every zero-in-degree candidate in a step gets the
	// same rank, then the whole layer is removed at once.
	remaining := main
	rank := 1
	for len(remaining) > 0 {
		var layer, rest []string
		for _, id := range remaining {
			if inDegree[id] == 0 {
				layer = append(layer, id)
			} else {
				rest = append(rest, id)
			}
		}
		if len(layer) == 0 {
			// Cycle: the conflicting candidates are excluded, never
			// ordered approximately.
			for _, id := range remaining {
				vr.Unranked[id] = true
			}
			break
		}
		for _, id := range layer {
			vr.Ranks[id] = rank
			for _, nb := range succ[id] {
				if inMain[nb] {
					inDegree[nb]--
				}
			}
		}
		remaining = rest
		rank++
	}

	return vr
}
