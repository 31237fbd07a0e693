package solver

import "github.com/solvelab/eqsolve/internal/expr"

// Result represents the outcome of a solve call. Exhausting the depth cap
// or the deadline without finding a solved form is a normal outcome, not an
// error: Solutions is empty and TimedOut says which bound was hit.
type Result struct {
	Solutions []*expr.Equation
	TimedOut  bool
	Depth     int
	Tree      *Tree
}

// SolutionStrings returns the printed form of each solution.
func (r *Result) SolutionStrings() []string {
	out := make([]string, len(r.Solutions))
	for i, eq := range r.Solutions {
		out[i] = eq.String()
	}
	return out
}

// Tree is the visualization form of the last search tree built.
type Tree struct {
	TimedOut bool      `json:"timedOut"`
	Root     *TreeNode `json:"root"`
}

// TreeNode records one explored equation and the children each candidate
// permutation produced from it.
type TreeNode struct {
	Equation string      `json:"equation"`
	Solved   bool        `json:"solved"`
	Children []*TreeNode `json:"children,omitempty"`
}

// node is the search-internal solution tree. perm is the permutation that
// produced this node from its parent; it is zero at the root and is used
// only to avoid immediately undoing the step.
type node struct {
	equation *expr.Equation
	solved   bool
	perm     Permutation
	children []*node
}

// collect gathers every solved-form equation in the tree, root included,
// in candidate order.
func collect(nd *node, out []*expr.Equation) []*expr.Equation {
	if nd.solved {
		out = append(out, nd.equation)
	}
	for _, c := range nd.children {
		out = collect(c, out)
	}
	return out
}

// visualize converts the search tree into its plain display structure.
func visualize(nd *node, timedOut bool) *Tree {
	if nd == nil {
		return &Tree{TimedOut: timedOut}
	}
	return &Tree{TimedOut: timedOut, Root: visualizeNode(nd)}
}

func visualizeNode(nd *node) *TreeNode {
	t := &TreeNode{
		Equation: nd.equation.String(),
		Solved:   nd.solved,
	}
	for _, c := range nd.children {
		t.Children = append(t.Children, visualizeNode(c))
	}
	return t
}
