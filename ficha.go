package golazo

import "context"

// Ficha status labels.
const (
	StatusFinished  = "Finalizado"
	StatusHalfTime  = "Entretiempo"
	StatusInPlay    = "En juego"
	StatusSuspended = "Suspendido"
)

// Defaults for ficha fields the boxscore text does not carry.
const (
	NoneListed   = "No hay"
	NoneOccurred = "No hubo"
)

// Ficha is a best-effort parse of a match boxscore. The source has no
// machine-readable structure, so goal attribution in particular is a
// heuristic and may put away goals in the home bucket.
type Ficha struct {
	Status          string `json:"estado"`
	HomeGoals       string `json:"goles_local"`
	AwayGoals       string `json:"goles_visitante"`
	HomeYellowCards string `json:"amarillas_local"`
	AwayYellowCards string `json:"amarillas_visitante"`
	HomeRedCards    string `json:"rojas_local"`
	AwayRedCards    string `json:"rojas_visitante"`
	Substitutions   string `json:"cambios"`
}

// FichaIncidents holds cards and substitutions read from dedicated DOM nodes
// rather than from the boxscore text.
type FichaIncidents struct {
	HomeYellowCards string
	AwayYellowCards string
	HomeRedCards    string
	AwayRedCards    string
	Substitutions   string
}

// FichaService returns match boxscores.
type FichaService interface {
	// FindFicha returns the parsed boxscore for a match identifier.
	// Returns ENOTFOUND if the page has no boxscore region.
	FindFicha(ctx context.Context, matchID string) (*Ficha, error)
}
