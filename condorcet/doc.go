// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package condorcet computes a group ranking from pairwise preference
statements using the Condorcet / Ranked Pairs (Tideman) method.

The pipeline has three pure stages:

 1. ResolveVoterRanking turns one voter's statements into a personal
    ranking (partial preferences, disconnected comparisons and cycles
    are all handled by deterministic fallback rules, never by guessing
    an order). ResolveAllVoterRankings runs this per voter in
    parallel.
 2. BuildMatrix sums all personal rankings into an N×N pairwise
    win-count matrix.
 3. RankedPairs locks pairwise victories in descending strength order,
    refusing any edge that would create a cycle, and topologically
    sorts the locked graph into one final ordering.

Every stage is a pure function over immutable inputs: no I/O, no
shared state, no errors. Running the pipeline twice on identical
inputs (including identical candidate ordering) yields byte-identical
results; all set-like iteration is replaced with first-appearance or
label-sorted orders to guarantee this.

# Determinism rules

  - Per-voter traversal follows the order candidates first appear in
    that voter's statements.
  - Equal-size component ties keep the component discovered first.
  - Pair sorting is stable: margin desc, total votes desc, then
    generation order.
  - Topological ties in the final ordering are broken by candidate
    label, ascending.
*/
package condorcet
