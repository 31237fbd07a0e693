// Package solver discovers a sequence of inverse algebraic operations that
// transforms an equation into solved form, by depth-bounded search.
package solver

import (
	"time"

	"github.com/solvelab/eqsolve/internal/expr"
	"github.com/solvelab/eqsolve/internal/simplify"
)

// DefaultTimeout bounds a solve call when the caller does not supply a
// timeout of its own.
const DefaultTimeout = 5000 * time.Millisecond

// maxDepthAttempts caps iterative deepening; together with the wall-clock
// deadline it is the only bound against combinatorial tree growth.
const maxDepthAttempts = 10

// Solver runs the iterative-deepening search. It holds no per-solve state;
// every Solve call builds its trees from scratch and returns everything in
// the Result.
type Solver struct {
	simp        *simplify.Simplifier
	maxAttempts int
}

// New creates a Solver with the default depth cap.
func New() *Solver {
	return NewWithDepth(maxDepthAttempts)
}

// NewWithDepth creates a Solver with a custom depth-escalation cap. A
// non-positive cap falls back to the default.
func NewWithDepth(maxAttempts int) *Solver {
	if maxAttempts <= 0 {
		maxAttempts = maxDepthAttempts
	}
	return &Solver{
		simp:        simplify.New(),
		maxAttempts: maxAttempts,
	}
}

// IsSolvedForm reports whether exactly one side of the equation is a bare
// variable and the other side is built entirely from numeric literals and
// arithmetic. The numeric side is not evaluated here; it may still contain
// unreduced arithmetic.
func IsSolvedForm(eq *expr.Equation) bool {
	if _, ok := eq.Left.(expr.Variable); ok {
		return expr.OnlyNumbers(eq.Right)
	}
	if _, ok := eq.Right.(expr.Variable); ok {
		return expr.OnlyNumbers(eq.Left)
	}
	return false
}

// Binding reads the variable name and numeric value out of a solved-form
// equation, evaluating any arithmetic left on the numeric side.
func Binding(eq *expr.Equation) (string, float64, bool) {
	if v, ok := eq.Left.(expr.Variable); ok && expr.OnlyNumbers(eq.Right) {
		val, err := expr.Eval(eq.Right, nil)
		return v.Name, val, err == nil
	}
	if v, ok := eq.Right.(expr.Variable); ok && expr.OnlyNumbers(eq.Left) {
		val, err := expr.Eval(eq.Left, nil)
		return v.Name, val, err == nil
	}
	return "", 0, false
}

// Solve simplifies the equation once, then explores permutations under
// increasing depth bounds until a solved form appears, the depth cap is
// exhausted, or the deadline passes. The first depth bound that yields any
// solved leaves short-circuits the deepening.
func (s *Solver) Solve(eq *expr.Equation, timeout time.Duration) *Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)

	start := s.simp.SimplifyEquation(eq)

	var root *node
	for depth := 1; depth <= s.maxAttempts; depth++ {
		// Each depth iteration rebuilds the tree from scratch; the
		// previous tree is discarded.
		root = &node{equation: start, solved: IsSolvedForm(start)}
		s.build(root, depth, 0, deadline)

		if solutions := collect(root, nil); len(solutions) > 0 {
			return &Result{
				Solutions: solutions,
				Depth:     depth,
				Tree:      visualize(root, false),
			}
		}
		if time.Now().After(deadline) {
			return &Result{
				TimedOut: true,
				Depth:    depth,
				Tree:     visualize(root, true),
			}
		}
	}

	// Every depth bound exhausted without a solution and without hitting
	// the deadline. This is distinct from a timeout.
	return &Result{
		Depth: s.maxAttempts,
		Tree:  visualize(root, false),
	}
}

// build expands a node by trying every candidate permutation except the one
// that would undo the step that produced it. The deadline is checked at the
// top of the call and before each candidate; exceeding it abandons the
// current branch only, and the depth iteration winds down at the next
// check.
func (s *Solver) build(nd *node, maxDepth, depth int, deadline time.Time) {
	if time.Now().After(deadline) || depth >= maxDepth {
		return
	}
	for _, p := range findPermutations(nd.equation) {
		if nd.perm.Label != "" && p.Label == nd.perm.InverseLabel() {
			continue
		}
		if time.Now().After(deadline) {
			return
		}
		next := s.simp.SimplifyEquation(p.apply(nd.equation))
		child := &node{
			equation: next,
			solved:   IsSolvedForm(next),
			perm:     p,
		}
		nd.children = append(nd.children, child)
		if !child.solved {
			s.build(child, maxDepth, depth+1, deadline)
		}
	}
}
