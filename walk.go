package selscan

// Collect walks tree and appends every selector of the given kind to acc
// in walk order, returning the extended slice. Duplicates are kept.
func Collect(acc []string, tree *Tree, kind SelectorKind) []string {
	if tree == nil {
		return acc
	}
	switch tree.Order {
	case OrderPre:
		return collectPre(acc, tree.Roots, kind)
	default:
		return collectLevel(acc, tree.Roots, kind)
	}
}

func collectLevel(acc []string, level []*Node, kind SelectorKind) []string {
	for {
		var tags []*Node
		for _, n := range level {
			if n.IsTag() {
				tags = append(tags, n)
			}
		}
		if len(tags) == 0 {
			return acc
		}

		var next []*Node
		for _, n := range tags {
			acc = append(acc, kind.Selectors(n)...)
			next = append(next, n.Children...)
		}
		level = next
	}
}

func collectPre(acc []string, roots []*Node, kind SelectorKind) []string {
	// Explicit stack; children are pushed in reverse so they pop in
	// source order.
	stack := make([]*Node, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.IsTag() {
			continue
		}
		acc = append(acc, kind.Selectors(n)...)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return acc
}
