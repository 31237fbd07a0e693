package main

import (
	"os"

	"github.com/solvelab/eqsolve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
