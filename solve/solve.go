// Package solve is the high-level entry point: it wires the parser,
// simplifier and search engine together behind a configurable engine.
package solve

import (
	"bufio"
	"context"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/solvelab/eqsolve/internal/expr"
	"github.com/solvelab/eqsolve/internal/solver"
	"github.com/solvelab/eqsolve/internal/syntax"
)

// verifyEpsilon is the tolerance used when a solved value is substituted
// back into the original equation. The solver itself uses exact float
// equality everywhere; only this final comparison is approximate.
const verifyEpsilon = 1e-9

// Config represents the engine configuration.
type Config struct {
	Name      string `yaml:"name"`
	TimeoutMs int    `yaml:"timeout-ms"`
	MaxDepth  int    `yaml:"max-depth"`
	Addr      string `yaml:"addr"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Name:      "eqsolve",
		TimeoutMs: 5000,
		MaxDepth:  10,
		Addr:      ":8080",
	}
}

// Engine solves equations given as text.
type Engine struct {
	cfg Config
	slv *solver.Solver
}

// New creates an engine, reading the yaml configuration file when a path
// is supplied.
func New(configPath string) (*Engine, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		parsed, err := parseConfigurationFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = DefaultConfig().TimeoutMs
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	return &Engine{cfg: cfg, slv: solver.NewWithDepth(cfg.MaxDepth)}, nil
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetTimeout overrides the configured solve timeout. Non-positive values
// are ignored.
func (e *Engine) SetTimeout(d time.Duration) {
	if d > 0 {
		e.cfg.TimeoutMs = int(d / time.Millisecond)
	}
}

// Timeout returns the engine's configured solve timeout.
func (e *Engine) Timeout() time.Duration {
	return time.Duration(e.cfg.TimeoutMs) * time.Millisecond
}

// SolveText lexes, parses and solves raw equation text. Lex and parse
// errors propagate unchanged; search exhaustion is not an error. A
// non-positive timeout uses the configured default.
func (e *Engine) SolveText(input string, timeout time.Duration) (*solver.Result, error) {
	eq, err := syntax.Parse(input)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = e.Timeout()
	}
	return e.slv.Solve(eq, timeout), nil
}

// Outcome is the result of solving one equation in a batch.
type Outcome struct {
	Input    string
	Result   *solver.Result
	Verified bool
	Err      error
}

// SolveOne solves a single input and verifies any solutions against the
// original equation.
func (e *Engine) SolveOne(input string) Outcome {
	eq, err := syntax.Parse(input)
	if err != nil {
		return Outcome{Input: input, Err: err}
	}
	res := e.slv.Solve(eq, e.Timeout())
	out := Outcome{Input: input, Result: res}
	if len(res.Solutions) > 0 {
		out.Verified = true
		for _, sol := range res.Solutions {
			if !Verify(eq, sol) {
				out.Verified = false
				break
			}
		}
	}
	return out
}

// Verify substitutes the solved value back into the original equation and
// compares both sides within verifyEpsilon. A degenerate solved value
// (Inf, NaN) never verifies.
func Verify(original, solution *expr.Equation) bool {
	name, val, ok := solver.Binding(solution)
	if !ok {
		return false
	}
	env := expr.NewEnv()
	env.Set(name, val)
	left, err := expr.Eval(original.Left, env)
	if err != nil {
		return false
	}
	right, err := expr.Eval(original.Right, env)
	if err != nil {
		return false
	}
	return math.Abs(left-right) <= verifyEpsilon
}

// ProcessEquations solves a batch of equations concurrently under a worker
// cap, reporting progress on the terminal. Outcomes keep the input order.
func ProcessEquations(ctx context.Context, logger *zap.Logger, engine *Engine, inputs []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(inputs))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for i, input := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			wg.Add(1)
			go func(i int, input string) {
				defer wg.Done()
				defer func() { <-sem }()

				outcomes[i] = engine.SolveOne(input)
				if outcomes[i].Err != nil && logger != nil {
					logger.Error("Error solving equation",
						zap.String("equation", input),
						zap.Error(outcomes[i].Err))
				}
				bar.Add(1)
			}(i, input)
		}
	}
	wg.Wait()

	return outcomes, nil
}

// ReadEquationsFile reads a batch input file: one equation per line, blank
// lines and '#' comments skipped.
func ReadEquationsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, scanner.Err()
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	// Read the configuration file
	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	// Parse the configuration file
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
