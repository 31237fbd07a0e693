package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"zappem.net/pub/io/lined"

	"github.com/solvelab/eqsolve/formatter"
	"github.com/solvelab/eqsolve/internal/simplify"
	"github.com/solvelab/eqsolve/internal/syntax"
	"github.com/solvelab/eqsolve/solve"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive equation shell",
	Long: `Reads lines from the terminal. A line containing '=' is solved as an
equation; a bare expression is simplified and printed back. Type 'quit' or
'exit' to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := solve.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize solve engine", zap.Error(err))
		}
		engine.SetTimeout(timeout)

		runRepl(engine)
	},
}

func runRepl(engine *solve.Engine) {
	simp := simplify.New()
	t := lined.NewReader()
	for {
		fmt.Print("> ")
		line, err := t.ReadString()
		if err != nil {
			if err != io.EOF {
				fmt.Println(err)
			}
			return
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		}

		if strings.Contains(line, "=") {
			outcome := engine.SolveOne(line)
			if outcome.Err != nil {
				fmt.Print(formatter.FormatError(line, outcome.Err))
				continue
			}
			fmt.Print(formatter.FormatResult(line, outcome.Result, outcome.Verified))
			continue
		}

		e, err := syntax.ParseExpr(line)
		if err != nil {
			fmt.Print(formatter.FormatError(line, err))
			continue
		}
		fmt.Println(simp.Simplify(e).String())
	}
}
