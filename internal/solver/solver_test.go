package solver

import (
	"testing"
	"time"

	"github.com/solvelab/eqsolve/internal/expr"
	"github.com/solvelab/eqsolve/internal/syntax"
)

func mustParse(t *testing.T, input string) *expr.Equation {
	t.Helper()
	eq, err := syntax.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return eq
}

func solveStrings(t *testing.T, input string) *Result {
	t.Helper()
	return New().Solve(mustParse(t, input), 0)
}

func TestSolveSingleStep(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"x + 2 = 5", "x = 3"},
		{"2 * x = 8", "x = 4"},
		{"x + x = 10", "x = 5"},
		{"x / 2 = 5", "x = 10"},
	}
	for _, c := range cases {
		res := solveStrings(t, c.input)
		if res.TimedOut {
			t.Fatalf("Solve(%q) timed out", c.input)
		}
		if res.Depth != 1 {
			t.Errorf("Solve(%q) depth = %d, want 1", c.input, res.Depth)
		}
		got := res.SolutionStrings()
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("Solve(%q) = %v, want [%s]", c.input, got, c.want)
		}
	}
}

func TestSolveTwoSteps(t *testing.T) {
	res := solveStrings(t, "2 * x + 3 = 7 + x")
	if res.TimedOut {
		t.Fatal("timed out")
	}
	if res.Depth != 2 {
		t.Errorf("depth = %d, want 2", res.Depth)
	}
	got := res.SolutionStrings()
	if len(got) == 0 {
		t.Fatal("no solutions")
	}
	for _, s := range got {
		if s != "x = 4" {
			t.Errorf("unexpected solution %q", s)
		}
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	// The simplified input is itself in solved form; the root counts.
	res := solveStrings(t, "x = 2 + 3")
	if res.TimedOut {
		t.Fatal("timed out")
	}
	got := res.SolutionStrings()
	if len(got) == 0 || got[0] != "x = 5" {
		t.Errorf("solutions = %v, want [x = 5]", got)
	}
}

// An equation with no variable exhausts every depth bound quickly. That is
// not a timeout: the two outcomes must stay distinguishable.
func TestExhaustionIsNotTimeout(t *testing.T) {
	res := solveStrings(t, "3 = 4")
	if len(res.Solutions) != 0 {
		t.Errorf("solutions = %v, want none", res.SolutionStrings())
	}
	if res.TimedOut {
		t.Error("TimedOut = true, want false for depth-cap exhaustion")
	}
	if res.Depth != maxDepthAttempts {
		t.Errorf("depth = %d, want %d", res.Depth, maxDepthAttempts)
	}
	if res.Tree == nil || res.Tree.Root == nil {
		t.Fatal("missing tree")
	}
	if res.Tree.TimedOut {
		t.Error("tree marked timed out")
	}
}

func TestSolveDeadline(t *testing.T) {
	eq := mustParse(t, "x * x + x = 2")
	start := time.Now()
	res := New().Solve(eq, 50*time.Millisecond)
	elapsed := time.Since(start)

	if !res.TimedOut {
		t.Fatalf("TimedOut = false, depth %d, solutions %v",
			res.Depth, res.SolutionStrings())
	}
	if len(res.Solutions) != 0 {
		t.Errorf("solutions = %v, want none", res.SolutionStrings())
	}
	if res.Tree == nil || !res.Tree.TimedOut {
		t.Error("tree not marked timed out")
	}
	// The deadline does not abort mid-candidate work, but it must not be
	// exceeded by orders of magnitude either.
	if elapsed > 5*time.Second {
		t.Errorf("solve ran %v past a 50ms deadline", elapsed)
	}
}

func TestSolveResultsAreBindings(t *testing.T) {
	inputs := []string{"x + 2 = 5", "2 * x = 8", "x + x = 10", "2 * x + 3 = 7 + x"}
	for _, input := range inputs {
		res := solveStrings(t, input)
		for _, sol := range res.Solutions {
			name, _, ok := Binding(sol)
			if !ok {
				t.Errorf("Solve(%q): solution %q has no binding", input, sol)
			}
			if name != "x" {
				t.Errorf("Solve(%q): bound %q, want x", input, name)
			}
		}
	}
}

func TestIsSolvedForm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"x = 3", true},
		{"3 = x", true},
		{"x = 2 + 3", true},
		{"x = 3 + y", false},
		{"x + 1 = 3", false},
		{"3 = 4", false},
	}
	for _, c := range cases {
		if got := IsSolvedForm(mustParse(t, c.input)); got != c.want {
			t.Errorf("IsSolvedForm(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestBinding(t *testing.T) {
	name, val, ok := Binding(mustParse(t, "x = 6 / 2"))
	if !ok || name != "x" || val != 3 {
		t.Errorf("Binding = (%q, %v, %v), want (x, 3, true)", name, val, ok)
	}
	name, val, ok = Binding(mustParse(t, "10 = y"))
	if !ok || name != "y" || val != 10 {
		t.Errorf("Binding = (%q, %v, %v), want (y, 10, true)", name, val, ok)
	}
	if _, _, ok := Binding(mustParse(t, "x + 1 = 3")); ok {
		t.Error("Binding accepted an unsolved form")
	}
}

func TestSideCandidates(t *testing.T) {
	// A binary side offers the inverse against its right operand, then its
	// left operand; a leaf side offers only its own subtraction.
	perms := sideCandidates(expr.Add(expr.Var("x"), expr.Num(2)))
	if len(perms) != 2 {
		t.Fatalf("got %d candidates, want 2", len(perms))
	}
	if perms[0].Label != "- 2" || perms[1].Label != "- x" {
		t.Errorf("labels = [%s, %s], want [- 2, - x]", perms[0].Label, perms[1].Label)
	}

	perms = sideCandidates(expr.Mul(expr.Num(2), expr.Var("x")))
	if perms[0].Label != "/ x" || perms[1].Label != "/ 2" {
		t.Errorf("labels = [%s, %s], want [/ x, / 2]", perms[0].Label, perms[1].Label)
	}

	perms = sideCandidates(expr.Num(5))
	if len(perms) != 1 || perms[0].Label != "- 5" {
		t.Errorf("leaf candidates = %v, want one \"- 5\"", perms)
	}
}

func TestFindPermutationsOrder(t *testing.T) {
	eq := mustParse(t, "x + 2 = 5")
	perms := findPermutations(eq)
	labels := make([]string, len(perms))
	for i, p := range perms {
		labels[i] = p.Label
	}
	want := []string{"- 2", "- x", "- 5"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", labels, want)
		}
	}
}

func TestInverseLabel(t *testing.T) {
	p := newPermutation(expr.OpSub, expr.Num(3))
	if got := p.InverseLabel(); got != "+ 3" {
		t.Errorf("InverseLabel = %q, want \"+ 3\"", got)
	}
	p = newPermutation(expr.OpDiv, expr.Var("x"))
	if got := p.InverseLabel(); got != "* x" {
		t.Errorf("InverseLabel = %q, want \"* x\"", got)
	}
}

func TestPermutationApply(t *testing.T) {
	eq := mustParse(t, "x + 2 = 5")
	got := newPermutation(expr.OpSub, expr.Num(2)).apply(eq)
	if got.String() != "x + 2 - 2 = 5 - 2" {
		t.Errorf("apply = %q", got.String())
	}
}

// A node never re-applies the exact inverse of the step that produced it.
func TestBuildExcludesImmediateUndo(t *testing.T) {
	s := New()
	nd := &node{
		equation: mustParse(t, "x - 3 = 7"),
		perm:     newPermutation(expr.OpSub, expr.Num(3)),
	}
	s.build(nd, 1, 0, time.Now().Add(time.Second))

	// Candidates are "+ 3", "+ x" and "- 7"; the first undoes the parent
	// step and is skipped.
	if len(nd.children) != 2 {
		t.Fatalf("got %d children, want 2", len(nd.children))
	}
	for _, c := range nd.children {
		if c.perm.Label == "+ 3" {
			t.Errorf("undo candidate %q was not excluded", c.perm.Label)
		}
	}
}

func TestTreeShape(t *testing.T) {
	res := solveStrings(t, "x + 2 = 5")
	root := res.Tree.Root
	if root == nil {
		t.Fatal("missing tree root")
	}
	if root.Equation != "x + 2 = 5" {
		t.Errorf("root = %q", root.Equation)
	}
	want := []string{"x = 3", "x + 2 - x = 5 - x", "x - 3 = 0"}
	if len(root.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(root.Children), len(want))
	}
	for i, c := range root.Children {
		if c.Equation != want[i] {
			t.Errorf("child %d = %q, want %q", i, c.Equation, want[i])
		}
	}
	if !root.Children[0].Solved {
		t.Error("first child not marked solved")
	}
}

func TestNewWithDepthFallback(t *testing.T) {
	if s := NewWithDepth(0); s.maxAttempts != maxDepthAttempts {
		t.Errorf("maxAttempts = %d, want %d", s.maxAttempts, maxDepthAttempts)
	}
	if s := NewWithDepth(3); s.maxAttempts != 3 {
		t.Errorf("maxAttempts = %d, want 3", s.maxAttempts)
	}
}
