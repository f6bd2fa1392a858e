// Package stepview builds the browsable a(k,i,j) label tree a UI walks
// to inspect how the synthesizer's DP arrived at a given cell, and
// parses a cell's label back into its (k, i, j) indices.
//
// Grounded on original_source/app.py's build_tree/append_tree_rec
// (the recursive five-children expansion) and
// ints_to_tree_label/tree_label_to_ints (the label grammar and its
// inverse).
package stepview

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is one entry of the label tree: a(k,i,j) with its five ordered
// children for k >= 1 ("a(k-1,i,j)", "OR", "a(k-1,i,k)", "a(k-1,k,k)*",
// "a(k-1,k,j)"), or a leaf for k == 0.
type Node struct {
	Label     string
	Highlight bool
	Children  []*Node
}

// BuildTree produces the full step-view tree for a synthesized DFA with
// n states, the given initial state and accepting states. The top-level
// children whose (i, j) pair is (initial, some accept state) are
// flagged Highlight -- they're the cells that make up the final regex.
func BuildTree(n, initial int, accept []int) *Node {
	acceptSet := make(map[int]bool, len(accept))
	for _, a := range accept {
		acceptSet[a] = true
	}

	root := &Node{Label: "DFA Graph"}
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			child := cellNode(n, i, j, false)
			child.Highlight = i == initial && acceptSet[j]
			root.Children = append(root.Children, child)
		}
	}
	return root
}

// cellNode builds the node for a(k,i,j), appending the "*" suffix to its
// label when starred is true (used for the "a(k-1,k,k)*" position, which
// expands the same way any other cell does -- it reuses the same R-cell
// the DP's STAR(R[k-1][k][k]) wraps).
func cellNode(k, i, j int, starred bool) *Node {
	label := Label(k, i, j)
	if starred {
		label += "*"
	}
	node := &Node{Label: label}
	if k == 0 {
		return node
	}
	node.Children = []*Node{
		cellNode(k-1, i, j, false),
		{Label: "OR"},
		cellNode(k-1, i, k, false),
		cellNode(k-1, k, k, true),
		cellNode(k-1, k, j, false),
	}
	return node
}

// Label formats a DP index triple as "a(k, i, j)".
func Label(k, i, j int) string {
	return fmt.Sprintf("a(%d, %d, %d)", k, i, j)
}

// ParseLabel inverts Label, also accepting a trailing "*" (the star
// position's label).
func ParseLabel(label string) (k, i, j int, err error) {
	s := strings.TrimSuffix(label, "*")
	if !strings.HasPrefix(s, "a(") || !strings.HasSuffix(s, ")") {
		return 0, 0, 0, fmt.Errorf("stepview: malformed label %q", label)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "a("), ")")

	parts := strings.Split(s, ", ")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("stepview: malformed label %q", label)
	}
	nums := make([]int, 3)
	for idx, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("stepview: malformed label %q: %w", label, convErr)
		}
		nums[idx] = n
	}
	return nums[0], nums[1], nums[2], nil
}
