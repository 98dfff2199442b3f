// Package goquery implements selscan.TreeSource for HTML markup using
// goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/selscan"
	"golang.org/x/net/html"
)

// Ensure Source implements selscan.TreeSource at compile time.
var _ selscan.TreeSource = (*Source)(nil)

// Source parses HTML markup into a selscan.Tree.
//
// Parsing is lenient: malformed or partial markup is repaired by the HTML5
// parsing algorithm rather than rejected.
type Source struct{}

// NewSource creates a new markup Source.
func NewSource() *Source {
	return &Source{}
}

// Parse parses contents as an HTML document and returns its top-level
// children as roots, walked in level order.
func (s *Source) Parse(contents string) (*selscan.Tree, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		return nil, &selscan.ParseError{Message: "failed to parse HTML: " + err.Error()}
	}

	tree := &selscan.Tree{Order: selscan.OrderLevel}
	doc.Contents().Each(func(_ int, sel *goquery.Selection) {
		tree.Roots = append(tree.Roots, convert(sel.Get(0)))
	})
	return tree, nil
}

// convert builds a selscan.Node for an HTML node. Only element nodes keep
// their attributes and children.
func convert(n *html.Node) *selscan.Node {
	if n.Type != html.ElementNode {
		return &selscan.Node{Kind: selscan.KindOther}
	}

	node := &selscan.Node{
		Kind:  selscan.KindTag,
		Name:  n.Data,
		Attrs: attrs(n),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		node.Children = append(node.Children, convert(c))
	}
	return node
}

// attrs returns n's attributes in source order. When a name repeats, the
// first occurrence wins, matching how browsers resolve duplicates.
func attrs(n *html.Node) []selscan.Attr {
	if len(n.Attr) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(n.Attr))
	out := make([]selscan.Attr, 0, len(n.Attr))
	for _, a := range n.Attr {
		if a.Namespace != "" || seen[a.Key] {
			continue
		}
		seen[a.Key] = true
		out = append(out, selscan.Attr{Name: a.Key, Value: a.Val})
	}
	return out
}
