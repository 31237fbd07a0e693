package expr

import "fmt"

// Env binds variable names to numeric values for evaluation.
type Env struct {
	vars map[string]float64
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]float64)}
}

// Set binds a variable to a value.
func (e *Env) Set(name string, val float64) {
	e.vars[name] = val
}

// Get looks up a variable binding.
func (e *Env) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Eval evaluates an expression under an environment using floating-point
// semantics. Division by zero is not trapped; it produces Inf or NaN like
// any other float operation. An unbound variable is an error.
func Eval(e Expr, env *Env) (float64, error) {
	switch v := e.(type) {
	case Number:
		return v.Val, nil
	case Variable:
		if env != nil {
			if val, ok := env.Get(v.Name); ok {
				return val, nil
			}
		}
		return 0, fmt.Errorf("unbound variable %q", v.Name)
	case Binary:
		left, err := Eval(v.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := Eval(v.Right, env)
		if err != nil {
			return 0, err
		}
		switch v.Op {
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			return left / right, nil
		default:
			return 0, fmt.Errorf("unknown operator %v", v.Op)
		}
	default:
		return 0, fmt.Errorf("cannot evaluate %T", e)
	}
}
