package view

import (
	"fmt"
	"strings"
)

// Walk visits n and its descendants depth first, parents before children.
// Returning false from fn skips the children of the current node.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// FindAll returns every node of the given kind in walk order.
func FindAll(n *Node, kind Kind) []*Node {
	var out []*Node
	Walk(n, func(c *Node, _ int) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Count returns the number of nodes in the tree.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node, int) bool {
		total++
		return true
	})
	return total
}

// Outline renders the structure of the tree, one node per line, indented by
// depth. Two trees with equal outlines have the same nesting, ordering and
// content.
func Outline(n *Node) string {
	var sb strings.Builder
	Walk(n, func(c *Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(describe(c))
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func describe(n *Node) string {
	switch n.Kind {
	case KindColumn, KindRow:
		return fmt.Sprintf("%s h=%s v=%s", n.Kind, n.Style.HAlign, n.Style.VAlign)
	case KindText:
		return fmt.Sprintf("%s %q", n.Kind, n.Text)
	case KindLink:
		target := ""
		if n.Run != nil && len(n.Run.Tags) > 0 {
			target = n.Run.Tags[0].Value
		}
		return fmt.Sprintf("%s %q -> %q", n.Kind, n.Text, target)
	case KindImage, KindIcon:
		return fmt.Sprintf("%s %s", n.Kind, n.Resource)
	case KindSpacer:
		return fmt.Sprintf("%s %g", n.Kind, n.Style.Height)
	default:
		return n.Kind.String()
	}
}
