package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
)

// rowEvent is one thing found while scanning the results table: either a
// match or a scorers line belonging to whatever match precedes it.
type rowEvent struct {
	match   *golazo.Match
	scorers *scorersLine
}

type scorersLine struct {
	home string
	away string
}

// ExtractMatches returns every match on a results page in document order.
//
// Rows are grouped under the nearest league header above them, and a scorers
// line is attached to the match emitted just before it. A scorers line with
// no preceding match is ignored. Rows that fail are logged and skipped.
func (p *Parser) ExtractMatches(doc *goquery.Document) []*golazo.Match {
	rows := doc.Find("tr[name]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		name, _ := attrOf(s, "name")
		return name == "vp" || name == "nvp"
	})
	if rows.Length() == 0 {
		p.logger.Warn("no match rows found")
		return []*golazo.Match{}
	}

	return p.foldEvents(p.collectEvents(rows))
}

// collectEvents scans rows once, threading the current league through.
func (p *Parser) collectEvents(rows *goquery.Selection) []rowEvent {
	var (
		events []rowEvent
		league League
	)
	rows.Each(func(i int, row *goquery.Selection) {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("failed to process row", "row", i, "err", fmt.Sprint(r))
			}
		}()

		league = p.leagueFor(row, league)

		if match := p.ExtractMatch(row, league); match != nil {
			p.attachKickoff(row, match)
			events = append(events, rowEvent{match: match})
			p.logger.Debug("processed match", "id", match.ID, "home", match.HomeTeam, "away", match.AwayTeam)
		}

		if line, ok := scorersOf(row); ok {
			events = append(events, rowEvent{scorers: &line})
		}
	})
	return events
}

// foldEvents emits the matches and attaches each scorers line to the
// nearest preceding match.
func (p *Parser) foldEvents(events []rowEvent) []*golazo.Match {
	matches := []*golazo.Match{}
	var last *golazo.Match
	for _, ev := range events {
		switch {
		case ev.match != nil:
			matches = append(matches, ev.match)
			last = ev.match
		case ev.scorers != nil:
			if last == nil {
				continue
			}
			last.HomeScorers = p.ParseScorers(ev.scorers.home)
			last.AwayScorers = p.ParseScorers(ev.scorers.away)
		}
	}
	return matches
}

// leagueFor returns the league of the header nearest above row, or current
// when row has no header sibling before it.
func (p *Parser) leagueFor(row *goquery.Selection, current League) League {
	header := row.PrevAllFiltered(".tituloin").First()
	if header.Length() == 0 {
		return current
	}
	logo, _ := attrOf(header.Find("img").First(), "src")
	title := textOf(header.Find("a").First(), golazo.Unknown)
	return League{
		Title: &title,
		Logo:  p.absolute(logo),
	}
}

// attachKickoff copies the kickoff time and its slot image onto match.
func (p *Parser) attachKickoff(row *goquery.Selection, match *golazo.Match) {
	slot := row.Find(".game-time").First()
	if slot.Length() == 0 {
		return
	}
	t := strippedText(slot)
	match.Time = &t

	src, _ := attrOf(slot.Find("img").First(), "src")
	switch {
	case src == "":
		match.Image = nil
	case strings.HasPrefix(src, "http"):
		match.Image = &src
	default:
		match.Image = p.absolute(src)
	}
}

func scorersOf(row *goquery.Selection) (scorersLine, bool) {
	cells := row.Find(".goles").First().Find("td")
	if cells.Length() < 2 {
		return scorersLine{}, false
	}
	return scorersLine{
		home: textOf(cells.Eq(0), ""),
		away: textOf(cells.Eq(1), ""),
	}, true
}
