package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
)

// excludedStreamLinks are card links that lead to dead channel pages.
var excludedStreamLinks = map[string]bool{
	"/en-vivo/fox-sports-2-en-vivo-por-internet": true,
	"/en-vivo/fox-sports-3-en-vivo-por-internet": true,
}

// ExtractStreamCards returns the first link of every card inside a card
// container, in document order.
func ExtractStreamCards(doc *goquery.Document) []*golazo.StreamCard {
	cards := []*golazo.StreamCard{}
	doc.Find(".card-container").Each(func(_ int, container *goquery.Selection) {
		container.Find(".card").Each(func(_ int, card *goquery.Selection) {
			a := card.Find("a[href]").First()
			href, ok := attrOf(a, "href")
			if !ok || excludedStreamLinks[href] {
				return
			}
			cards = append(cards, &golazo.StreamCard{
				Link: href,
				Text: textOf(a, ""),
			})
		})
	})
	return cards
}

// ExtractVideoFrame returns the src of the page's embedded player.
// The boolean is false when the page has no player iframe.
func ExtractVideoFrame(doc *goquery.Document) (string, bool) {
	iframe := doc.Find("iframe#videoFrame").First()
	if iframe.Length() == 0 {
		return "", false
	}
	src, _ := attrOf(iframe, "src")
	return src, true
}

// PageText returns the full text content of the document.
func PageText(doc *goquery.Document) string {
	return doc.Text()
}
