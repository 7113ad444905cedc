package syntax

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Tree is a parsed syntax tree for one source file. It is read-only input to
// the extraction pass and is discarded once the file's documentation tree has
// been produced.
type Tree struct {
	tree   *sitter.Tree
	source []byte
	path   string
}

// Path returns the source file path the tree was parsed from.
func (t *Tree) Path() string {
	return t.path
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return Node{inner: t.tree.RootNode(), source: t.source}
}

// Close releases the underlying tree-sitter tree. Safe to call twice.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Walk visits every node depth-first in document order. Returning false from
// the visitor skips the node's children.
func (t *Tree) Walk(visit func(Node) bool) {
	walk(t.tree.RootNode(), t.source, visit)
}

func walk(node *sitter.Node, source []byte, visit func(Node) bool) {
	if node == nil {
		return
	}
	if !visit(Node{inner: node, source: source}) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(uint(i)), source, visit)
	}
}

// FirstDefinitionName returns the name of the first class or module defined
// in the file, or "" when there is none.
func (t *Tree) FirstDefinitionName() string {
	var name string
	t.Walk(func(n Node) bool {
		if name != "" {
			return false
		}
		raw := n.inner.Kind()
		if raw == "class" || raw == "module" {
			if nameNode := n.inner.ChildByFieldName("name"); nameNode != nil {
				name = string(n.source[nameNode.StartByte():nameNode.EndByte()])
			}
			return false
		}
		return true
	})
	return name
}

// Node is one node of a syntax tree.
type Node struct {
	inner  *sitter.Node
	source []byte
}

// Kind classifies the node into the closed NodeKind enumeration.
func (n Node) Kind() NodeKind {
	return classify(n.inner.Kind(), n.inner.IsNamed(), n.textBytes())
}

// RawKind returns the underlying grammar node type.
func (n Node) RawKind() string {
	return n.inner.Kind()
}

// Text returns the node's source text.
func (n Node) Text() string {
	return string(n.textBytes())
}

// StartLine returns the 1-indexed source line the node starts on.
func (n Node) StartLine() int {
	return int(n.inner.StartPosition().Row) + 1
}

func (n Node) textBytes() []byte {
	return n.source[n.inner.StartByte():n.inner.EndByte()]
}
