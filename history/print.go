package history

import (
	"fmt"
	"strings"
)

// Print renders the tree as indented ASCII, one line per node,
// showing each node's version and payload, with the current node
// marked by "*".
func (t *Tree[T]) Print() string {
	var b strings.Builder
	t.printNode(&b, t.root)
	return b.String()
}

func (t *Tree[T]) printNode(b *strings.Builder, n *Node[T]) {
	marker := "  "
	if n.Version == t.current {
		marker = "* "
	}
	fmt.Fprintf(b, "%s%s%s data=%v\n", strings.Repeat("  ", n.Level), marker, n.Version, n.Data)
	for _, c := range n.Children {
		t.printNode(b, c)
	}
}

// PrintMinimal renders the tree as a flat list of version strings
// only, one per line, with the current node marked by "*".
func (t *Tree[T]) PrintMinimal() string {
	var b strings.Builder
	t.printMinimalNode(&b, t.root)
	return b.String()
}

func (t *Tree[T]) printMinimalNode(b *strings.Builder, n *Node[T]) {
	marker := ""
	if n.Version == t.current {
		marker = "*"
	}
	fmt.Fprintf(b, "%s%s\n", n.Version, marker)
	for _, c := range n.Children {
		t.printMinimalNode(b, c)
	}
}
