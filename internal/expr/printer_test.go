package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{name: "integer literal", expr: Num(3), expected: "3"},
		{name: "decimal literal", expr: Num(2.5), expected: "2.5"},
		{name: "negative literal parenthesized", expr: Num(-3), expected: "(-3)"},
		{name: "variable", expr: Var("x"), expected: "x"},
		{name: "flat sum", expr: Add(Var("x"), Num(2)), expected: "x + 2"},
		{
			name:     "lower precedence child parenthesized",
			expr:     Mul(Add(Var("x"), Num(1)), Num(2)),
			expected: "(x + 1) * 2",
		},
		{
			name:     "higher precedence child bare",
			expr:     Add(Var("x"), Mul(Num(2), Var("y"))),
			expected: "x + 2 * y",
		},
		{
			name:     "left associative subtraction bare",
			expr:     Sub(Sub(Var("x"), Var("y")), Var("z")),
			expected: "x - y - z",
		},
		{
			name:     "right operand of minus parenthesized",
			expr:     Sub(Var("x"), Sub(Var("y"), Var("z"))),
			expected: "x - (y - z)",
		},
		{
			name:     "right operand of minus with plus parenthesized",
			expr:     Sub(Var("x"), Add(Var("y"), Var("z"))),
			expected: "x - (y + z)",
		},
		{
			name:     "right operand of division parenthesized",
			expr:     Div(Var("x"), Mul(Num(2), Var("y"))),
			expected: "x / (2 * y)",
		},
		{
			name:     "left division chain bare",
			expr:     Div(Div(Var("x"), Num(2)), Num(3)),
			expected: "x / 2 / 3",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func TestEquationString(t *testing.T) {
	t.Parallel()
	eq := NewEquation(Add(Var("x"), Num(2)), Num(5))
	assert.Equal(t, "x + 2 = 5", eq.String())
}
