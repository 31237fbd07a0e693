package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solvelab/eqsolve/formatter"
	"github.com/solvelab/eqsolve/solve"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Solve a file of equations, one per line",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide an input file")
			os.Exit(1)
		}

		engine, err := solve.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize solve engine", zap.Error(err))
		}
		engine.SetTimeout(timeout)

		inputs, err := solve.ReadEquationsFile(args[0])
		if err != nil {
			logger.Fatal("Failed to read input file", zap.String("file", args[0]), zap.Error(err))
		}
		if len(inputs) == 0 {
			fmt.Println("no equations to solve")
			return
		}

		outcomes, err := solve.ProcessEquations(context.Background(), logger, engine, inputs)
		if err != nil {
			logger.Fatal("Batch solve failed", zap.Error(err))
		}
		fmt.Println()

		var solved, unsolved, failed int
		for _, out := range outcomes {
			if out.Err != nil {
				failed++
				fmt.Print(formatter.FormatError(out.Input, out.Err))
				continue
			}
			if len(out.Result.Solutions) == 0 {
				unsolved++
			} else {
				solved++
			}
			fmt.Print(formatter.FormatResult(out.Input, out.Result, out.Verified))
		}

		fmt.Printf("%d solved, %d unsolved, %d failed\n", solved, unsolved, failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}
