package selscan

// NodeKind discriminates the nodes of a source tree.
type NodeKind int

// NodeKind constants.
const (
	// KindOther is any node that carries no selectors: text, comments,
	// expressions. Its subtree is never visited.
	KindOther NodeKind = iota

	// KindTag is a markup element or JSX element.
	KindTag
)

// Attr is a single attribute as written on a tag.
type Attr struct {
	Name  string
	Value string
}

// Node is a node in the tree built by a TreeSource. Only tag nodes carry
// attributes and children.
type Node struct {
	Kind     NodeKind
	Name     string
	Attrs    []Attr
	Children []*Node
}

// IsTag reports whether n is a tag node.
func (n *Node) IsTag() bool {
	return n != nil && n.Kind == KindTag
}

// Order is the traversal order a tree is walked in.
type Order int

// Order constants.
const (
	// OrderLevel visits all tag nodes of one level before descending into
	// the concatenated children of that level. A level without tag nodes
	// ends the walk.
	OrderLevel Order = iota

	// OrderPre is depth-first pre-order: a node, then its children, then
	// its next sibling.
	OrderPre
)

// Tree is the root sequence produced by a TreeSource together with the
// order its dialect is walked in.
type Tree struct {
	Roots []*Node
	Order Order
}

// TreeSource parses raw source text into a Tree.
type TreeSource interface {
	// Parse builds the root sequence for contents.
	// Returns EPARSE if contents is not valid for the source's grammar.
	Parse(contents string) (*Tree, error)
}
