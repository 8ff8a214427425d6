package goquery

import (
	"strings"

	"github.com/fwojciec/golazo"
)

// ParseScorers splits a scorers cell such as "45'Messi;90+2'Di María" into
// entries. Entries that do not split into exactly a minute and a name on the
// quote character are logged and dropped. The result is never nil.
func (p *Parser) ParseScorers(text string) []golazo.Scorer {
	scorers := []golazo.Scorer{}
	for _, entry := range strings.Split(text, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "'")
		if len(parts) != 2 {
			p.logger.Warn("unexpected scorer format", "entry", entry)
			continue
		}
		scorers = append(scorers, golazo.Scorer{
			Minute:     strings.TrimSpace(parts[0]),
			ScorerName: strings.TrimSpace(parts[1]),
		})
	}
	return scorers
}
