package prettyprint

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xmlquery"
	"github.com/samber/lo"
	"golang.org/x/net/html"
)

// ValidateCSS reports whether selector compiles.
func ValidateCSS(selector string) error {
	if _, err := cascadia.Compile(selector); err != nil {
		return NewSelectError("invalid css selector "+selector, err)
	}
	return nil
}

// SelectCSS returns the nodes matching a CSS selector, in document order.
// Only HTML trees support CSS selection.
func (t *Tree) SelectCSS(selector string) ([]*Node, error) {
	if t.htmlRoot == nil {
		return nil, NewSelectError("css selection requires an html source", nil)
	}
	if err := ValidateCSS(selector); err != nil {
		return nil, err
	}
	matched := goquery.NewDocumentFromNode(t.htmlRoot).Find(selector).Nodes
	return mapHTMLNodes(matched, t.htmlIndex), nil
}

// SelectXPath returns the elements matching an XPath expression, in
// document order. Text and attribute matches are dropped.
func (t *Tree) SelectXPath(expr string) ([]*Node, error) {
	switch {
	case t.htmlRoot != nil:
		matched, err := htmlquery.QueryAll(t.htmlRoot, expr)
		if err != nil {
			return nil, NewSelectError("invalid xpath expression "+expr, err)
		}
		return mapHTMLNodes(matched, t.htmlIndex), nil
	case t.xmlRoot != nil:
		matched, err := xmlquery.QueryAll(t.xmlRoot, expr)
		if err != nil {
			return nil, NewSelectError("invalid xpath expression "+expr, err)
		}
		return lo.FilterMap(matched, func(m *xmlquery.Node, _ int) (*Node, bool) {
			n, ok := t.xmlIndex[m]
			return n, ok && n.IsElement()
		}), nil
	default:
		return nil, NewSelectError("tree has no source document", nil)
	}
}

func mapHTMLNodes(matched []*html.Node, index map[*html.Node]*Node) []*Node {
	return lo.FilterMap(matched, func(m *html.Node, _ int) (*Node, bool) {
		n, ok := index[m]
		return n, ok && n.IsElement()
	})
}
