package golazo

import "context"

// NotFound is the sentinel for a labeled team field missing from the profile page.
const NotFound = "No encontrado"

// NoImage is the sentinel for a team profile without a crest image.
const NoImage = "No imagen encontrada"

// StandingsRow is one team's line in a league table. Every count is passed
// through exactly as the page shows it.
type StandingsRow struct {
	Team         string  `json:"team"`
	Played       string  `json:"played"`
	Won          string  `json:"won"`
	Drawn        string  `json:"drawn"`
	Lost         string  `json:"lost"`
	GoalsFor     string  `json:"gf"`
	GoalsAgainst string  `json:"ga"`
	GoalDiff     string  `json:"gd"`
	Points       string  `json:"points"`
	Name         *string `json:"name"`

	// TeamDetails is fetched from the team's profile page when Name is set.
	// It stays nil when that fetch fails.
	TeamDetails *TeamDetails `json:"team_details,omitempty"`
}

// TeamDetails holds the labeled fields of a team profile page.
type TeamDetails struct {
	Name     string `json:"nombre"`
	FullName string `json:"nombreCompleto"`
	Founded  string `json:"fundado"`
	Nickname string `json:"apodo"`
	Stadium  string `json:"estadio"`
	Image    string `json:"imagen"`
}

// StandingsService returns league tables.
type StandingsService interface {
	// FindStandings returns the table of the league page at the given path.
	// Returns ENOTFOUND if the page has no standings table.
	FindStandings(ctx context.Context, league string) ([]*StandingsRow, error)
}

// TeamService returns team profiles.
type TeamService interface {
	// FindTeamDetails returns the profile of the team with the given club key.
	FindTeamDetails(ctx context.Context, name string) (*TeamDetails, error)
}
