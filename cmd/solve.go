package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solvelab/eqsolve/formatter"
	"github.com/solvelab/eqsolve/internal/solver"
	"github.com/solvelab/eqsolve/solve"
)

var (
	solveJSONOutput bool
	showTree        bool
	outPath         string
)

var solveCmd = &cobra.Command{
	Use:   "solve [equation]",
	Short: "Solve a single equation given as text",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide an equation")
			os.Exit(1)
		}

		engine, err := solve.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize solve engine", zap.Error(err))
		}

		engine.SetTimeout(timeout)

		input := strings.Join(args, " ")
		runSolve(engine, input, solveJSONOutput, outPath)
	},
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSONOutput, "json", false, "Output the result in JSON format")
	solveCmd.Flags().BoolVar(&showTree, "tree", false, "Print the search trace tree")
	solveCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

// solveReport mirrors the HTTP response shape for the --json flag.
type solveReport struct {
	Equation  string       `json:"equation"`
	Solutions []string     `json:"solutions"`
	Tree      *solver.Tree `json:"tree,omitempty"`
	Depth     int          `json:"depth"`
	TimedOut  bool         `json:"timedOut"`
	Verified  bool         `json:"verified"`
}

func runSolve(engine *solve.Engine, input string, isJSON bool, jsonOutput string) {
	outcome := engine.SolveOne(input)
	if outcome.Err != nil {
		if isJSON {
			fmt.Fprintln(os.Stderr, outcome.Err)
		} else {
			fmt.Print(formatter.FormatError(input, outcome.Err))
		}
		os.Exit(1)
	}
	result := outcome.Result

	if !isJSON {
		fmt.Print(formatter.FormatResult(input, result, outcome.Verified))
		if showTree {
			fmt.Print(formatter.FormatTree(result.Tree))
		}
		return
	}

	report := solveReport{
		Equation:  input,
		Solutions: result.SolutionStrings(),
		Depth:     result.Depth,
		TimedOut:  result.TimedOut,
		Verified:  outcome.Verified,
	}
	if showTree {
		report.Tree = result.Tree
	}
	d, err := json.Marshal(report)
	if err != nil {
		logger.Error("Error marshalling result to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
