package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeafEqual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a, b     Expr
		expected bool
	}{
		{name: "equal numbers", a: Num(3), b: Num(3), expected: true},
		{name: "unequal numbers", a: Num(3), b: Num(4), expected: false},
		{name: "equal variables", a: Var("x"), b: Var("x"), expected: true},
		{name: "unequal variables", a: Var("x"), b: Var("y"), expected: false},
		{name: "number vs variable", a: Num(3), b: Var("x"), expected: false},
		// Equality is defined for leaves only; identical binary trees do
		// not compare equal.
		{name: "identical binaries", a: Add(Var("x"), Num(1)), b: Add(Var("x"), Num(1)), expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, LeafEqual(tt.a, tt.b))
		})
	}
}

func TestOnlyNumbers(t *testing.T) {
	t.Parallel()
	assert.True(t, OnlyNumbers(Num(3)))
	assert.True(t, OnlyNumbers(Add(Num(1), Mul(Num(2), Num(3)))))
	assert.False(t, OnlyNumbers(Var("x")))
	assert.False(t, OnlyNumbers(Add(Num(1), Var("x"))))
}

func TestVariables(t *testing.T) {
	t.Parallel()
	names := Variables(Add(Mul(Num(2), Var("x")), Sub(Var("y"), Var("x"))))
	assert.Equal(t, map[string]bool{"x": true, "y": true}, names)

	assert.Empty(t, Variables(Num(7)))
}

func TestOpInverse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, OpSub, OpAdd.Inverse())
	assert.Equal(t, OpAdd, OpSub.Inverse())
	assert.Equal(t, OpDiv, OpMul.Inverse())
	assert.Equal(t, OpMul, OpDiv.Inverse())
}
