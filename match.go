package golazo

import "context"

// Match is one fixture row from a results page.
//
// Scores are strings because the source shows placeholders such as "-" for
// games that have not started. LeagueTitle and LeagueLogo are nil for rows
// listed before any league header. HomeScorers and AwayScorers are never nil.
type Match struct {
	ID          string   `json:"id"`
	LeagueTitle *string  `json:"leagueTitle"`
	LeagueLogo  *string  `json:"leagueLogo"`
	GameState   string   `json:"gameState"`
	HomeTeam    string   `json:"homeTeam"`
	HomeLogo    *string  `json:"homeLogo"`
	AwayTeam    string   `json:"awayTeam"`
	AwayLogo    *string  `json:"awayLogo"`
	HomeScore   string   `json:"homeScore"`
	AwayScore   string   `json:"awayScore"`
	HomeScorers []Scorer `json:"homeScorers"`
	AwayScorers []Scorer `json:"awayScorers"`

	// Time and Image are set only when the row carries a kickoff-time node.
	Time  *string `json:"time,omitempty"`
	Image *string `json:"image,omitempty"`
}

// Scorer is a single goal: the minute (possibly with an injury-time suffix)
// and the scorer's name.
type Scorer struct {
	Minute     string `json:"minute"`
	ScorerName string `json:"scorerName"`
}

// MatchService returns the matches listed on a results page.
type MatchService interface {
	// FindMatches returns the matches for a day path such as "ayer" or
	// "manana". An empty day means the front page.
	// Returns EUPSTREAM if the page cannot be fetched.
	FindMatches(ctx context.Context, day string) ([]*Match, error)
}
