// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders a finished Condorcet computation as plain text:
the head-to-head matrix table and the final rankings with locked
win/loss records. It is the textual counterpart of the results JSON,
meant for terminals and chat bots.
*/
package report
