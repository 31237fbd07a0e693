package expr

import "strconv"

// Precedence describes how tightly an expression holds together. A bare
// leaf binds tighter than any operator.
type Precedence int

const (
	AddPrecedence Precedence = iota
	MulPrecedence
	AtomicPrecedence
)

func precedenceOf(e Expr) Precedence {
	switch v := e.(type) {
	case Binary:
		if v.Op == OpMul || v.Op == OpDiv {
			return MulPrecedence
		}
		return AddPrecedence
	default:
		return AtomicPrecedence
	}
}

// String renders a literal as its decimal value. Negative literals are
// parenthesized so the printed form re-parses as a single operand.
func (n Number) String() string {
	s := strconv.FormatFloat(n.Val, 'f', -1, 64)
	if n.Val < 0 {
		return "(" + s + ")"
	}
	return s
}

func (v Variable) String() string {
	return v.Name
}

// String renders a binary expression with the minimal parentheses needed
// for the text to re-parse into an equivalent tree. A child is wrapped when
// it binds looser than the parent operator, or when it is the right operand
// of '-' or '/' and its own operator would change meaning under
// left-to-right evaluation (x - (y - z) vs x - y - z).
func (b Binary) String() string {
	parent := precedenceOf(b)

	left := b.Left.String()
	if precedenceOf(b.Left) < parent {
		left = "(" + left + ")"
	}

	right := b.Right.String()
	rightPrec := precedenceOf(b.Right)
	switch {
	case rightPrec < parent:
		right = "(" + right + ")"
	case rightPrec == parent && (b.Op == OpSub || b.Op == OpDiv):
		right = "(" + right + ")"
	}

	return left + " " + b.Op.String() + " " + right
}

func (eq *Equation) String() string {
	return eq.Left.String() + " = " + eq.Right.String()
}
