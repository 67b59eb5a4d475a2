// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements HTTP request handlers for the movie-night API.

# Handler Groups

  - MovieHandler: catalog management (add, list, mark watched)
  - VoterHandler: username claims and RSVPs
  - PreferenceHandler: pairwise preference submission
  - ResultsHandler: Condorcet computation endpoints

Each handler struct receives the database connection and configuration
via its constructor.

# Condorcet Computation

ComputeCondorcetResults is the seam between storage and the pure
condorcet package: it loads the unwatched catalog, selects the
participating voters (RSVPs for the event date, falling back to every
voter who ever submitted a preference), loads their statements, and
runs the three-stage pipeline. Handlers only shape its output into
JSON or text.

# Voter Selection

The participating voter set is a policy of this layer, not of the
condorcet package: the core ranks whatever voters it is handed.
*/
package handlers
