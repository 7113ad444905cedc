// Package extract separates documentation from code in a parsed source file.
// It collects embedded documentation fragments in source order, screens
// string-like literals for text that would masquerade as documentation, and
// assembles the fragments into a single documentation tree.
package extract

import (
	"github.com/docloom/docloom/internal/syntax"
)

// Fragment is the raw text of one embedded documentation block, captured
// verbatim from the source.
type Fragment struct {
	Text string
	Line int // 1-indexed source line the block starts on
}

// Fragments collects the documentation fragments of a tree in source order.
// A file with no documentation yields an empty list; that is not an error.
func Fragments(tree *syntax.Tree) []Fragment {
	var fragments []Fragment
	tree.Walk(func(n syntax.Node) bool {
		if n.Kind() == syntax.KindDocumentation {
			fragments = append(fragments, Fragment{Text: n.Text(), Line: n.StartLine()})
			return false
		}
		return true
	})
	return fragments
}

// CodeNodes returns the nodes that count as code: everything except comments,
// documentation, whitespace, separators and post-__END__ data. Literals are
// code under this rule.
func CodeNodes(tree *syntax.Tree) []syntax.Node {
	var nodes []syntax.Node
	tree.Walk(func(n syntax.Node) bool {
		if n.Kind().IsCode() {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}
