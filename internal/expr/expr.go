// Package expr defines the immutable expression tree the solver operates on.
package expr

// Expr represents a node in an algebraic expression tree.
//
// Trees are immutable once constructed: every transformation builds a new
// tree and may share untouched subtrees with the old one. Nodes never hold
// a reference to their parent.
type Expr interface {
	isExpr()
	String() string
}

// Number represents a numeric literal.
type Number struct {
	Val float64
}

func (Number) isExpr() {}

// Variable represents a free variable reference.
type Variable struct {
	Name string
}

func (Variable) isExpr() {}

// Op represents the arithmetic binary operators.
type Op int

const (
	_ Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Inverse returns the algebraic inverse of an operator.
func (op Op) Inverse() Op {
	switch op {
	case OpAdd:
		return OpSub
	case OpSub:
		return OpAdd
	case OpMul:
		return OpDiv
	case OpDiv:
		return OpMul
	default:
		return op
	}
}

// Binary represents a binary expression. Left-associative chains are built
// with the deeper expression on the left.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (Binary) isExpr() {}

// Equation is a left/right pair of expressions joined by equality. It only
// ever appears as the root of a solve request, never as an operand.
type Equation struct {
	Left  Expr
	Right Expr
}

// Helper functions to construct tree nodes

// Num creates a numeric literal.
func Num(v float64) Expr {
	return Number{Val: v}
}

// Var creates a variable reference.
func Var(name string) Expr {
	return Variable{Name: name}
}

// Bin creates a binary expression.
func Bin(op Op, left, right Expr) Expr {
	return Binary{Op: op, Left: left, Right: right}
}

// Add creates an addition expression.
func Add(left, right Expr) Expr {
	return Binary{Op: OpAdd, Left: left, Right: right}
}

// Sub creates a subtraction expression.
func Sub(left, right Expr) Expr {
	return Binary{Op: OpSub, Left: left, Right: right}
}

// Mul creates a multiplication expression.
func Mul(left, right Expr) Expr {
	return Binary{Op: OpMul, Left: left, Right: right}
}

// Div creates a division expression.
func Div(left, right Expr) Expr {
	return Binary{Op: OpDiv, Left: left, Right: right}
}

// NewEquation creates an equation from its two sides.
func NewEquation(left, right Expr) *Equation {
	return &Equation{Left: left, Right: right}
}

// LeafEqual reports structural equality for leaf nodes. It is defined only
// for literals and variables; any binary expression compares unequal, even
// to an identical one.
func LeafEqual(a, b Expr) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Val == bv.Val
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.Name == bv.Name
	default:
		return false
	}
}

// OnlyNumbers reports whether an expression is built entirely from numeric
// literals and arithmetic.
func OnlyNumbers(e Expr) bool {
	switch v := e.(type) {
	case Number:
		return true
	case Binary:
		return OnlyNumbers(v.Left) && OnlyNumbers(v.Right)
	default:
		return false
	}
}

// Variables returns the set of variable names referenced by an expression.
func Variables(e Expr) map[string]bool {
	names := make(map[string]bool)
	collectVariables(e, names)
	return names
}

func collectVariables(e Expr, names map[string]bool) {
	switch v := e.(type) {
	case Variable:
		names[v.Name] = true
	case Binary:
		collectVariables(v.Left, names)
		collectVariables(v.Right, names)
	}
}
