// Package simplify rewrites expressions to a canonical reduced form using
// algebraic identities.
package simplify

import (
	"github.com/solvelab/eqsolve/internal/expr"
)

// maxPasses caps fixed-point iteration against rules whose interplay could
// keep producing textually distinct forms.
const maxPasses = 50

// Simplifier normalizes expressions by repeated rewriting. It is pure: a
// Simplifier holds no state and a simplified tree shares no mutable data
// with its input.
type Simplifier struct{}

// New creates a new Simplifier.
func New() *Simplifier {
	return &Simplifier{}
}

// Simplify rewrites an expression to its fixed point: re-applying Simplify
// to its own output prints identically. Each pass rewrites bottom-up; the
// printed form decides whether another pass is needed, so rules that expose
// new redexes one level up still converge.
func (s *Simplifier) Simplify(e expr.Expr) expr.Expr {
	for i := 0; i < maxPasses; i++ {
		next := s.pass(e)
		if next.String() == e.String() {
			return next
		}
		e = next
	}
	return e
}

// SimplifyEquation simplifies both sides of an equation.
func (s *Simplifier) SimplifyEquation(eq *expr.Equation) *expr.Equation {
	return expr.NewEquation(s.Simplify(eq.Left), s.Simplify(eq.Right))
}

// pass applies one bottom-up rewrite sweep.
func (s *Simplifier) pass(e expr.Expr) expr.Expr {
	b, ok := e.(expr.Binary)
	if !ok {
		return e
	}
	left := s.pass(b.Left)
	right := s.pass(b.Right)
	return s.rewrite(b.Op, left, right)
}

// rewrite applies the rule table to a single node whose children are
// already simplified. The first matching rule wins.
func (s *Simplifier) rewrite(op expr.Op, left, right expr.Expr) expr.Expr {
	ln, lIsNum := left.(expr.Number)
	rn, rIsNum := right.(expr.Number)

	// Constant folding. Division by a zero literal is not trapped; it
	// folds to Inf or NaN per float semantics.
	if lIsNum && rIsNum {
		return expr.Num(fold(op, ln.Val, rn.Val))
	}

	// Identity and absorbing elements.
	switch op {
	case expr.OpAdd:
		if rIsNum && rn.Val == 0 {
			return left
		}
		if lIsNum && ln.Val == 0 {
			return right
		}
	case expr.OpSub:
		if rIsNum && rn.Val == 0 {
			return left
		}
	case expr.OpMul:
		if rIsNum && rn.Val == 1 {
			return left
		}
		if lIsNum && ln.Val == 1 {
			return right
		}
		if rIsNum && rn.Val == 0 {
			return expr.Num(0)
		}
		if lIsNum && ln.Val == 0 {
			return expr.Num(0)
		}
	case expr.OpDiv:
		if rIsNum && rn.Val == 1 {
			return left
		}
	}

	// Like-term fusion: v + v = 2 * v.
	if op == expr.OpAdd {
		if lv, ok := left.(expr.Variable); ok {
			if rv, ok := right.(expr.Variable); ok && lv.Name == rv.Name {
				return expr.Mul(expr.Num(2), lv)
			}
		}
	}

	// Multiplicative cancellation against an equal literal:
	// (a*n)/n, (n*a)/n, (a/n)*n, n*(a/n).
	if op == expr.OpDiv && rIsNum {
		if lb, ok := left.(expr.Binary); ok && lb.Op == expr.OpMul {
			if n, ok := lb.Right.(expr.Number); ok && n.Val == rn.Val {
				return lb.Left
			}
			if n, ok := lb.Left.(expr.Number); ok && n.Val == rn.Val {
				return lb.Right
			}
		}
	}
	if op == expr.OpMul {
		if rIsNum {
			if lb, ok := left.(expr.Binary); ok && lb.Op == expr.OpDiv {
				if n, ok := lb.Right.(expr.Number); ok && n.Val == rn.Val {
					return lb.Left
				}
			}
		}
		if lIsNum {
			if rb, ok := right.(expr.Binary); ok && rb.Op == expr.OpDiv {
				if n, ok := rb.Right.(expr.Number); ok && n.Val == ln.Val {
					return rb.Left
				}
			}
		}
	}

	// Additive cancellation by structural equality of the cancelled leaf:
	// (a+b)-b = a, (a-b)+b = a. Equality does not recurse into binary
	// subexpressions.
	if op == expr.OpSub {
		if lb, ok := left.(expr.Binary); ok && lb.Op == expr.OpAdd && expr.LeafEqual(lb.Right, right) {
			return lb.Left
		}
	}
	if op == expr.OpAdd {
		if lb, ok := left.(expr.Binary); ok && lb.Op == expr.OpSub && expr.LeafEqual(lb.Right, right) {
			return lb.Left
		}
	}

	// Constant re-association: (a+n)-m and (a-n)+m collapse to a single
	// net offset against a, dropped entirely when the net is zero.
	if op == expr.OpSub && rIsNum {
		if lb, ok := left.(expr.Binary); ok && lb.Op == expr.OpAdd {
			if n, ok := lb.Right.(expr.Number); ok {
				return offset(lb.Left, n.Val-rn.Val)
			}
		}
	}
	if op == expr.OpAdd && rIsNum {
		if lb, ok := left.(expr.Binary); ok && lb.Op == expr.OpSub {
			if n, ok := lb.Right.(expr.Number); ok {
				return offset(lb.Left, rn.Val-n.Val)
			}
		}
	}

	// Coefficient reduction against a trailing variable subtraction:
	// ((n*v) + m) - v = ((n-1)*v) + m.
	if op == expr.OpSub {
		if v, ok := right.(expr.Variable); ok {
			if coeff, m, ok := matchCoeffVarPlus(left, v.Name); ok {
				return coeffPlus(coeff-1, v, m)
			}
		}
	}

	// Coefficient-vs-coefficient cancellation:
	// ((a*v) + m) - (b*v) = ((a-b)*v) + m.
	if op == expr.OpSub {
		if b, v, ok := matchCoeffVar(right); ok {
			if a, m, ok := matchCoeffVarPlus(left, v.Name); ok {
				return coeffPlus(a-b, v, m)
			}
		}
	}

	// Distribution of a literal factor over addition/subtraction:
	// n*(b±c) = n*b ± n*c and (b±c)*n = b*n ± c*n, with the new products
	// rewritten immediately.
	if op == expr.OpMul {
		if lIsNum {
			if rb, ok := right.(expr.Binary); ok && (rb.Op == expr.OpAdd || rb.Op == expr.OpSub) {
				return expr.Bin(rb.Op,
					s.rewrite(expr.OpMul, left, rb.Left),
					s.rewrite(expr.OpMul, left, rb.Right))
			}
		}
		if rIsNum {
			if lb, ok := left.(expr.Binary); ok && (lb.Op == expr.OpAdd || lb.Op == expr.OpSub) {
				return expr.Bin(lb.Op,
					s.rewrite(expr.OpMul, lb.Left, right),
					s.rewrite(expr.OpMul, lb.Right, right))
			}
		}
	}

	// Distribution over division: (b±c)/n = b/n ± c/n.
	if op == expr.OpDiv && rIsNum {
		if lb, ok := left.(expr.Binary); ok && (lb.Op == expr.OpAdd || lb.Op == expr.OpSub) {
			return expr.Bin(lb.Op,
				s.rewrite(expr.OpDiv, lb.Left, right),
				s.rewrite(expr.OpDiv, lb.Right, right))
		}
	}

	// No rule fired; rebuild the node from its simplified children.
	return expr.Bin(op, left, right)
}

func fold(op expr.Op, a, b float64) float64 {
	switch op {
	case expr.OpAdd:
		return a + b
	case expr.OpSub:
		return a - b
	case expr.OpMul:
		return a * b
	default:
		return a / b
	}
}

// offset rebuilds a ± |net|, choosing the operator by the sign of net and
// collapsing to a when the net constant is zero.
func offset(a expr.Expr, net float64) expr.Expr {
	switch {
	case net == 0:
		return a
	case net > 0:
		return expr.Add(a, expr.Num(net))
	default:
		return expr.Sub(a, expr.Num(-net))
	}
}

// coeffPlus rebuilds (coeff*v) + m, simplifying the coefficient away when
// it is exactly 0 or 1. Exact float equality is deliberate here.
func coeffPlus(coeff float64, v expr.Variable, m expr.Expr) expr.Expr {
	switch coeff {
	case 0:
		return m
	case 1:
		return expr.Add(v, m)
	default:
		return expr.Add(expr.Mul(expr.Num(coeff), v), m)
	}
}

// matchCoeffVar matches n*v for a literal coefficient and a variable.
func matchCoeffVar(e expr.Expr) (float64, expr.Variable, bool) {
	b, ok := e.(expr.Binary)
	if !ok || b.Op != expr.OpMul {
		return 0, expr.Variable{}, false
	}
	n, ok := b.Left.(expr.Number)
	if !ok {
		return 0, expr.Variable{}, false
	}
	v, ok := b.Right.(expr.Variable)
	if !ok {
		return 0, expr.Variable{}, false
	}
	return n.Val, v, true
}

// matchCoeffVarPlus matches (n*v) + m where v has the given name,
// returning the coefficient and the trailing m.
func matchCoeffVarPlus(e expr.Expr, name string) (float64, expr.Expr, bool) {
	b, ok := e.(expr.Binary)
	if !ok || b.Op != expr.OpAdd {
		return 0, nil, false
	}
	coeff, v, ok := matchCoeffVar(b.Left)
	if !ok || v.Name != name {
		return 0, nil, false
	}
	return coeff, b.Right, true
}
