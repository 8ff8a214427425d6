package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Labels that precede each free-text field on a team profile page.
const (
	labelFullName = "Nombre completo:"
	labelFounded  = "Fundación:"
	labelNickname = "Apodo:"
	labelStadium  = "Estadio local:"
)

// ExtractTeamDetails reads a team profile page. Each labeled field is looked
// up on its own and falls back to golazo.NotFound when its label is missing.
func (p *Parser) ExtractTeamDetails(doc *goquery.Document) *golazo.TeamDetails {
	details := &golazo.TeamDetails{
		Name:     textOf(doc.Find("strong").First(), ""),
		FullName: labeledField(doc, labelFullName),
		Founded:  labeledField(doc, labelFounded),
		Nickname: labeledField(doc, labelNickname),
		Stadium:  labeledField(doc, labelStadium),
		Image:    golazo.NoImage,
	}

	// Founding text carries a parenthesised remark, e.g. "1 de abril de 1901 (123 años)".
	if details.Founded != golazo.NotFound {
		details.Founded = strings.TrimSpace(strings.SplitN(details.Founded, "(", 2)[0])
	}

	if src, ok := attrOf(doc.Find("div.clubder").First().Find("img").First(), "src"); ok {
		details.Image = src
	}
	return details
}

// labeledField finds the first text node containing label and returns the
// trimmed text of the node right after the next <br> following the label's
// parent element.
func labeledField(doc *goquery.Document, label string) string {
	root := doc.Get(0)
	if root == nil {
		return golazo.NotFound
	}

	var labelNode *html.Node
	walkAfter(root, func(n *html.Node) bool {
		if n.Type == html.TextNode && strings.Contains(n.Data, label) {
			labelNode = n
			return false
		}
		return true
	})
	if labelNode == nil || labelNode.Parent == nil {
		return golazo.NotFound
	}

	var br *html.Node
	walkAfter(labelNode.Parent, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Br {
			br = n
			return false
		}
		return true
	})
	if br == nil {
		return golazo.NotFound
	}
	if br.NextSibling == nil {
		return ""
	}
	return strings.TrimSpace(nodeText(br.NextSibling))
}
