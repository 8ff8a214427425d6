package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
)

// ExtractStandings returns one row per table row that has cells, in document
// order. Cells are read by position: team, played, won, drawn, lost, goals
// for, goals against, goal difference, points. Missing cells read as "".
//
// Returns ENOTFOUND when the page has no standings table. Team details are
// not fetched here.
func (p *Parser) ExtractStandings(doc *goquery.Document) ([]*golazo.StandingsRow, error) {
	table := doc.Find(".tablesorter1").First()
	if table.Length() == 0 {
		p.logger.Warn("no standings table found")
		return nil, golazo.Errorf(golazo.ENOTFOUND, "no standings table found")
	}

	rows := []*golazo.StandingsRow{}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		cell := func(i int) string { return textOf(cells.Eq(i), "") }

		row := &golazo.StandingsRow{
			Team:         cell(0),
			Played:       cell(1),
			Won:          cell(2),
			Drawn:        cell(3),
			Lost:         cell(4),
			GoalsFor:     cell(5),
			GoalsAgainst: cell(6),
			GoalDiff:     cell(7),
			Points:       cell(8),
		}
		if name, ok := attrOf(tr, "name"); ok {
			row.Name = &name
		}
		rows = append(rows, row)
	})
	return rows, nil
}
