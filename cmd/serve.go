package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solvelab/eqsolve/internal/server"
	"github.com/solvelab/eqsolve/solve"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP solve endpoint",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := solve.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize solve engine", zap.Error(err))
		}
		engine.SetTimeout(timeout)

		listen := addr
		if listen == "" {
			listen = engine.Config().Addr
		}

		srv := server.New(engine, logger)
		if err := srv.ListenAndServe(listen); err != nil {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides the configured one)")
}
