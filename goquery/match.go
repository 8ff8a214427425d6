package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
)

// League is the competition a run of match rows belongs to, taken from the
// most recent league header above them.
type League struct {
	Title *string
	Logo  *string
}

// ExtractMatch builds a match from one results-table row. The league is
// passed in because the row itself does not name it.
//
// Returns nil for rows with fewer than two cells of their own, which are
// headers, spacers or bare scorers lines. Scorer lists are left empty;
// ExtractMatches fills them from the scorers line that follows.
func (p *Parser) ExtractMatch(row *goquery.Selection, league League) *golazo.Match {
	if row.Find("td").Not(".goles td").Length() < 2 {
		p.logger.Debug("skipping row without match cells")
		return nil
	}

	// Teams are positional: the first block is home, the second away.
	teams := row.Find(".game-t1")
	home, away := teams.Eq(0), teams.Eq(1)

	return &golazo.Match{
		ID:          matchID(row),
		LeagueTitle: league.Title,
		LeagueLogo:  league.Logo,
		GameState:   gameState(row),
		HomeTeam:    teamName(home),
		HomeLogo:    p.teamLogo(home),
		AwayTeam:    teamName(away),
		AwayLogo:    p.teamLogo(away),
		HomeScore:   textOf(row.Find(".game-r1").First().Find("span").First(), "0"),
		AwayScore:   textOf(row.Find(".game-r2").First().Find("span").First(), "0"),
		HomeScorers: []golazo.Scorer{},
		AwayScorers: []golazo.Scorer{},
	}
}

// matchID reads the ficha parameter from the row's first link.
func matchID(row *goquery.Selection) string {
	href, ok := attrOf(row.Find("a[href]").First(), "href")
	if !ok || !strings.Contains(href, "ficha=") {
		return golazo.Unknown
	}
	parts := strings.Split(href, "ficha=")
	return parts[len(parts)-1]
}

// gameState picks the display state. A finished marker always wins and shows
// a fixed label whatever its own text says.
func gameState(row *goquery.Selection) string {
	finished := row.Find(".game-fin").First()
	playing := row.Find(".game-play").First()
	scheduled := row.Find(".game-time").First()

	switch {
	case finished.Length() > 0:
		return golazo.StatusFinished
	case playing.Length() > 0:
		return textOf(playing, "")
	case scheduled.Length() > 0:
		return "Inicio: " + textOf(scheduled, "")
	}
	for _, s := range []string{textOf(finished, ""), textOf(scheduled, ""), textOf(playing, "")} {
		if s != "" {
			return s
		}
	}
	return ""
}

func teamName(block *goquery.Selection) string {
	if block.Length() == 0 {
		return golazo.Unknown
	}
	return textOf(block.Find(".datoequipo").First(), golazo.Unknown)
}

func (p *Parser) teamLogo(block *goquery.Selection) *string {
	src, _ := attrOf(block.Find("img").First(), "src")
	return p.absolute(src)
}
