package models

import "time"

// Ranking method constants
const (
	MethodRankedPairs = "ranked-pairs"
)

// Request types

type AddMovieRequest struct {
	Title   string `json:"title"`
	AddedBy string `json:"added_by,omitempty"`
}

type ClaimUsernameRequest struct {
	Username string `json:"username"`
}

type RSVPRequest struct {
	// Empty means the next Wednesday.
	EventDate string `json:"event_date,omitempty"`
	// Defaults to attending when omitted.
	Attending *bool `json:"attending,omitempty"`
}

// movie_a is preferred when preference > 0, movie_b when < 0, 0 is a tie
type SubmitPreferenceRequest struct {
	MovieAID   string `json:"movie_a_id"`
	MovieBID   string `json:"movie_b_id"`
	Preference int    `json:"preference"`
}

// Response types

type AddMovieResponse struct {
	MovieID string `json:"movie_id"`
}

type ClaimUsernameResponse struct {
	VoterToken string `json:"voter_token"`
}

type RSVPResponse struct {
	EventDate string `json:"event_date"`
	Attending bool   `json:"attending"`
}

type SubmitPreferenceResponse struct {
	Message string `json:"message"`
}

type MarkWatchedResponse struct {
	MovieID   string `json:"movie_id"`
	WatchedOn string `json:"watched_on"`
}

// Domain types

type Movie struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	AddedBy   *string   `json:"added_by,omitempty"`
	Watched   bool      `json:"watched"`
	WatchedOn *string   `json:"watched_on,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Preference struct {
	MovieAID   string `json:"movie_a_id"`
	MovieBID   string `json:"movie_b_id"`
	Preference int    `json:"preference"`
}

// Result types

// MovieRef identifies one candidate position in the matrix and
// rankings; the slice order is the matrix index order.
type MovieRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type RankingEntry struct {
	Rank         int    `json:"rank"` // 1-indexed, best first
	MovieID      string `json:"movie_id"`
	Title        string `json:"title"`
	LockedWins   int    `json:"locked_wins"`
	LockedLosses int    `json:"locked_losses"`
}

type ResultsResponse struct {
	Method        string         `json:"method"`
	EventDate     string         `json:"event_date"`
	VoterCount    int            `json:"voter_count"`
	UsedAllVoters bool           `json:"used_all_voters"` // nobody RSVP'd, fell back to every voter
	Movies        []MovieRef     `json:"movies"`
	Matrix        [][]int        `json:"matrix"`
	Rankings      []RankingEntry `json:"rankings"`
}

type MatrixResponse struct {
	EventDate  string     `json:"event_date"`
	VoterCount int        `json:"voter_count"`
	Movies     []MovieRef `json:"movies"`
	Matrix     [][]int    `json:"matrix"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
