// Package treesitter implements selscan.TreeSource for JSX component
// source using tree-sitter's JavaScript grammar.
package treesitter

import (
	"context"
	"fmt"

	"github.com/fwojciec/selscan"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Node types of the tree-sitter JavaScript grammar used by Source.
const (
	nodeExportStatement     = "export_statement"
	nodeDefault             = "default"
	nodeFunctionDeclaration = "function_declaration"
	nodeGeneratorFunction   = "generator_function_declaration"
	nodeReturnStatement     = "return_statement"
	nodeParenthesized       = "parenthesized_expression"
	nodeComment             = "comment"
	nodeJSXElement          = "jsx_element"
	nodeJSXSelfClosing      = "jsx_self_closing_element"
	nodeJSXOpeningElement   = "jsx_opening_element"
	nodeJSXClosingElement   = "jsx_closing_element"
	nodeJSXAttribute        = "jsx_attribute"
	nodeString              = "string"
)

// Ensure Source implements selscan.TreeSource at compile time.
var _ selscan.TreeSource = (*Source)(nil)

// Source parses JSX component source into a selscan.Tree.
//
// Only JSX returned directly from a named-exported function declaration is
// considered. Source is safe for concurrent use; each Parse call creates
// its own tree-sitter parser.
type Source struct{}

// NewSource creates a new component Source.
func NewSource() *Source {
	return &Source{}
}

// Parse parses contents as an ES module with JSX and returns the JSX
// elements returned by exported function declarations, walked in pre-order.
// Returns a *selscan.ParseError if contents contains syntax errors.
func (s *Source) Parse(contents string) (*selscan.Tree, error) {
	src := []byte(contents)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, &selscan.ParseError{Message: fmt.Sprintf("tree-sitter parse failed: %v", err)}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root)
	}

	out := &selscan.Tree{Order: selscan.OrderPre}
	for _, stmt := range namedChildren(root) {
		fn := exportedFunction(stmt)
		if fn == nil {
			continue
		}
		body := fn.ChildByFieldName("body")
		if body == nil {
			continue
		}
		for _, inner := range namedChildren(body) {
			if inner.Type() != nodeReturnStatement {
				continue
			}
			if el := unwrap(firstNamed(inner)); isJSXElement(el) {
				out.Roots = append(out.Roots, convert(el, src))
			}
		}
	}
	return out, nil
}

// exportedFunction returns the function declaration wrapped by a named
// export statement, or nil. Default exports are not named exports.
func exportedFunction(n *sitter.Node) *sitter.Node {
	if n.Type() != nodeExportStatement {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == nodeDefault {
			return nil
		}
	}
	decl := n.ChildByFieldName("declaration")
	if decl == nil {
		return nil
	}
	switch decl.Type() {
	case nodeFunctionDeclaration, nodeGeneratorFunction:
		return decl
	default:
		return nil
	}
}

// unwrap strips any parentheses around an expression.
func unwrap(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == nodeParenthesized {
		n = firstNamed(n)
	}
	return n
}

// isJSXElement reports whether n is a JSX element. Fragments (<>...</>)
// have no tag name and are not elements.
func isJSXElement(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case nodeJSXSelfClosing:
		return true
	case nodeJSXElement:
		open := openingElement(n)
		return open != nil && open.ChildByFieldName("name") != nil
	default:
		return false
	}
}

// convert builds a selscan.Node for a JSX element.
func convert(el *sitter.Node, src []byte) *selscan.Node {
	open := el
	if el.Type() == nodeJSXElement {
		open = openingElement(el)
	}

	node := &selscan.Node{Kind: selscan.KindTag}
	if name := open.ChildByFieldName("name"); name != nil {
		node.Name = name.Content(src)
	}
	for _, a := range namedChildren(open) {
		if a.Type() != nodeJSXAttribute {
			continue
		}
		if attr, ok := literalAttr(a, src); ok {
			node.Attrs = append(node.Attrs, attr)
		}
	}

	if el.Type() == nodeJSXSelfClosing {
		return node
	}
	for _, c := range namedChildren(el) {
		switch {
		case c.Type() == nodeJSXOpeningElement, c.Type() == nodeJSXClosingElement:
		case isJSXElement(c):
			node.Children = append(node.Children, convert(c, src))
		default:
			node.Children = append(node.Children, &selscan.Node{Kind: selscan.KindOther})
		}
	}
	return node
}

// openingElement returns the opening tag of a jsx_element.
func openingElement(el *sitter.Node) *sitter.Node {
	for _, c := range namedChildren(el) {
		if c.Type() == nodeJSXOpeningElement {
			return c
		}
	}
	return nil
}

// literalAttr returns a name="value" attribute. Attributes without a value
// or with an expression value have no literal and are skipped.
func literalAttr(a *sitter.Node, src []byte) (selscan.Attr, bool) {
	parts := namedChildren(a)
	if len(parts) < 2 || parts[1].Type() != nodeString {
		return selscan.Attr{}, false
	}
	value := parts[1].Content(src)
	if len(value) >= 2 {
		value = value[1 : len(value)-1]
	}
	return selscan.Attr{Name: parts[0].Content(src), Value: value}, true
}

// syntaxError locates the first ERROR or MISSING node under root.
func syntaxError(root *sitter.Node) *selscan.ParseError {
	n := firstError(root)
	if n == nil {
		return &selscan.ParseError{Message: "syntax error"}
	}
	pt := n.StartPoint()
	msg := "syntax error"
	if n.IsMissing() {
		msg = fmt.Sprintf("missing %q", n.Type())
	}
	return &selscan.ParseError{
		Line:    int(pt.Row) + 1,
		Column:  int(pt.Column) + 1,
		Message: msg,
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.IsMissing() || c.HasError() {
			if found := firstError(c); found != nil {
				return found
			}
		}
	}
	return nil
}

// namedChildren returns n's named children, skipping comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c.Type() == nodeComment {
			continue
		}
		out = append(out, c)
	}
	return out
}

func firstNamed(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if cs := namedChildren(n); len(cs) > 0 {
		return cs[0]
	}
	return nil
}
