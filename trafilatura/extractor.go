// Package trafilatura finds the main text of stream pages, skipping
// navigation, ads and footers, with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/golazo"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ golazo.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
type Extractor struct {
	fallback bool
}

// NewExtractor creates an Extractor that falls back to readability and
// dom-distiller when trafilatura's own heuristics find nothing.
func NewExtractor() *Extractor {
	return &Extractor{fallback: true}
}

// Extract returns the page title and main text. Returns EINVALID for empty
// input and ENOTFOUND when no main content is found.
func (e *Extractor) Extract(rawHTML string) (*golazo.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, golazo.Errorf(golazo.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: e.fallback,
	})
	if err != nil {
		return nil, golazo.Errorf(golazo.ENOTFOUND, "no main content: %v", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" && result.ContentNode != nil {
		text = strings.TrimSpace(nodeText(result.ContentNode))
	}
	return &golazo.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}

// nodeText concatenates the text under n with block elements on their own lines.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "p", "div", "li", "h1", "h2", "h3", "h4", "br", "tr":
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
