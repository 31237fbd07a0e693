package solver

import "github.com/solvelab/eqsolve/internal/expr"

// Permutation is one candidate inverse algebraic operation, applied to both
// sides of an equation. Op is the inverse operator, Value the operand
// subtree. Label is the textual form ("- 3", "* x") used for display and
// for excluding an immediate undo of the parent step; it plays no part in
// applying the operation.
type Permutation struct {
	Op    expr.Op
	Value expr.Expr
	Label string
}

func newPermutation(op expr.Op, value expr.Expr) Permutation {
	return Permutation{
		Op:    op,
		Value: value,
		Label: op.String() + " " + value.String(),
	}
}

// InverseLabel returns the label of the permutation that would undo this
// one: the same operand under the inverse operator.
func (p Permutation) InverseLabel() string {
	return p.Op.Inverse().String() + " " + p.Value.String()
}

// findPermutations generates the candidate permutations for an equation:
// all left-side candidates first, then all right-side candidates.
func findPermutations(eq *expr.Equation) []Permutation {
	perms := sideCandidates(eq.Left)
	return append(perms, sideCandidates(eq.Right)...)
}

// sideCandidates produces the candidates one side contributes. A leaf side
// offers only its own subtraction; a binary side offers the operator's
// inverse applied to its right operand, then to its left operand.
func sideCandidates(side expr.Expr) []Permutation {
	if b, ok := side.(expr.Binary); ok {
		inv := b.Op.Inverse()
		return []Permutation{
			newPermutation(inv, b.Right),
			newPermutation(inv, b.Left),
		}
	}
	return []Permutation{newPermutation(expr.OpSub, side)}
}

// apply builds the new equation structurally: both sides wrapped in the
// permutation's operator with the shared operand subtree on the right.
func (p Permutation) apply(eq *expr.Equation) *expr.Equation {
	return expr.NewEquation(
		expr.Bin(p.Op, eq.Left, p.Value),
		expr.Bin(p.Op, eq.Right, p.Value),
	)
}
