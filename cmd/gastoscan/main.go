package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gastoscan/gastoscan/internal/common"
)

var (
	cfg    *common.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gastoscan",
	Short: "Extrae datos estructurados de boletas y facturas fotografiadas",
	PersistentPreRun: func(*cobra.Command, []string) {
		_ = godotenv.Load()
		cfg = common.LoadConfig()
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(extractCmd, batchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
