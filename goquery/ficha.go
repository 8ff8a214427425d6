package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
	"golang.org/x/net/html"
)

// Anchors delimiting the boxscore region of a ficha page.
const (
	fichaStartID = "usoficha"
	fichaStopID  = "ficha-estadisticas"
)

var (
	statusRe  = regexp.MustCompile(`(Finalizado|Entretiempo|Inicio: .+|En juego|Suspendido)`)
	goalsRe   = regexp.MustCompile(`(?s)GOLES\n(.*?)\n(AMARILLAS|ROJAS)`)
	yellowsRe = regexp.MustCompile(`(?s)AMARILLAS\n(.*?)\nCAMBIOS`)
	subsRe    = regexp.MustCompile(`(?s)CAMBIOS\n(.*?)\n`)
)

// ExtractFicha isolates the boxscore text of a ficha page, parses it, and
// fills cards and substitutions from dedicated DOM nodes where the text had
// none. Red cards only ever come from those nodes. Returns ENOTFOUND when
// the page has no boxscore region.
func (p *Parser) ExtractFicha(doc *goquery.Document) (*golazo.Ficha, error) {
	content, err := p.ExtractFichaContent(doc)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, golazo.Errorf(golazo.ENOTFOUND, "empty boxscore region")
	}

	ficha := ParseFicha(content)
	incidents := ExtractFichaIncidents(doc)
	if ficha.HomeYellowCards == golazo.NoneListed && incidents.HomeYellowCards != golazo.NoneOccurred {
		ficha.HomeYellowCards = incidents.HomeYellowCards
	}
	if ficha.AwayYellowCards == golazo.NoneListed && incidents.AwayYellowCards != golazo.NoneOccurred {
		ficha.AwayYellowCards = incidents.AwayYellowCards
	}
	ficha.HomeRedCards = incidents.HomeRedCards
	ficha.AwayRedCards = incidents.AwayRedCards
	if ficha.Substitutions == golazo.NoneOccurred {
		ficha.Substitutions = incidents.Substitutions
	}
	return ficha, nil
}

// ExtractFichaContent returns the text nodes between the boxscore start
// anchor and the statistics anchor, trimmed and joined by newlines. Without
// a statistics anchor the walk runs to the end of the document.
func (p *Parser) ExtractFichaContent(doc *goquery.Document) (string, error) {
	start := doc.Find("#" + fichaStartID).Get(0)
	if start == nil {
		p.logger.Warn("boxscore anchor not found", "id", fichaStartID)
		return "", golazo.Errorf(golazo.ENOTFOUND, "element %q not found", fichaStartID)
	}
	stop := doc.Find("#" + fichaStopID).Get(0)

	var lines []string
	walkAfter(start, func(n *html.Node) bool {
		if n == stop {
			return false
		}
		if n.Type == html.TextNode {
			lines = append(lines, strings.TrimSpace(n.Data))
		}
		return true
	})
	return strings.Join(lines, "\n"), nil
}

// ParseFicha pattern-matches boxscore text.
//
// Goal lines are bucketed by keyword: a line mentioning "visitante" goes to
// the away side, every other line to the home side. The text carries no
// reliable side marker, so this attribution is best-effort.
func ParseFicha(content string) *golazo.Ficha {
	ficha := &golazo.Ficha{
		Status:          golazo.StatusInPlay,
		HomeGoals:       golazo.NoneListed,
		AwayGoals:       golazo.NoneListed,
		HomeYellowCards: golazo.NoneListed,
		AwayYellowCards: golazo.NoneListed,
		HomeRedCards:    golazo.NoneOccurred,
		AwayRedCards:    golazo.NoneOccurred,
		Substitutions:   golazo.NoneOccurred,
	}

	if m := statusRe.FindString(content); m != "" {
		ficha.Status = m
	}

	if m := goalsRe.FindStringSubmatch(content); m != nil {
		var home, away []string
		for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
			lower := strings.ToLower(line)
			switch {
			case strings.Contains(lower, "local"):
				home = append(home, strings.TrimSpace(line))
			case strings.Contains(lower, "visitante"):
				away = append(away, strings.TrimSpace(line))
			default:
				home = append(home, strings.TrimSpace(line))
			}
		}
		if len(home) > 0 {
			ficha.HomeGoals = strings.Join(home, "\n")
		}
		if len(away) > 0 {
			ficha.AwayGoals = strings.Join(away, "\n")
		}
	}

	yellows := yellowsRe.FindAllStringSubmatch(content, -1)
	if len(yellows) > 0 {
		ficha.HomeYellowCards = strings.TrimSpace(yellows[0][1])
	}
	if len(yellows) > 1 {
		ficha.AwayYellowCards = strings.TrimSpace(yellows[1][1])
	}

	if m := subsRe.FindStringSubmatch(content); m != nil {
		ficha.Substitutions = strings.TrimSpace(m[1])
	}
	return ficha
}

// ExtractFichaIncidents reads cards and substitutions from their own nodes.
// The first marker node of each kind is the home side, the second the away side.
func ExtractFichaIncidents(doc *goquery.Document) *golazo.FichaIncidents {
	side := func(selector string, i int) string {
		return orDefault(textOf(doc.Find(selector).Eq(i), ""), golazo.NoneOccurred)
	}

	var subs []string
	doc.Find(".cambios").Each(func(_ int, s *goquery.Selection) {
		if t := textOf(s, ""); t != "" {
			subs = append(subs, t)
		}
	})

	return &golazo.FichaIncidents{
		HomeYellowCards: side(".amarillas", 0),
		AwayYellowCards: side(".amarillas", 1),
		HomeRedCards:    side(".rojas", 0),
		AwayRedCards:    side(".rojas", 1),
		Substitutions:   orDefault(strings.Join(subs, "\n"), golazo.NoneOccurred),
	}
}
