package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// textOf returns the trimmed text of sel, or def when sel matched nothing.
func textOf(sel *goquery.Selection, def string) string {
	if sel == nil || sel.Length() == 0 {
		return def
	}
	return strings.TrimSpace(sel.Text())
}

// attrOf returns the trimmed value of the named attribute. The boolean is
// false when sel matched nothing or lacks the attribute.
func attrOf(sel *goquery.Selection, name string) (string, bool) {
	if sel == nil || sel.Length() == 0 {
		return "", false
	}
	v, ok := sel.Attr(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// strippedText trims every text node under sel and joins them with no
// separator, so "21:30 <span>hs</span>" reads "21:30hs".
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		walkAfter(n, func(c *html.Node) bool {
			if !within(c, n) {
				return false
			}
			if c.Type == html.TextNode {
				b.WriteString(strings.TrimSpace(c.Data))
			}
			return true
		})
	}
	return b.String()
}

// within reports whether n is root or one of its descendants.
func within(n, root *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// next returns the node after n in document order, descending into n first.
func next(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// walkAfter calls fn for every node following start in document order,
// including start's descendants, until fn returns false.
func walkAfter(start *html.Node, fn func(*html.Node) bool) {
	for n := next(start); n != nil; n = next(n) {
		if !fn(n) {
			return
		}
	}
}

// nodeText returns the concatenated text of n and its descendants.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
