package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmsim/tmconv/internal/config"
	"github.com/tmsim/tmconv/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tmconv",
	Short: "Converter of human readable turing machine commands into json",
	Long: `tmconv translates line-oriented Turing machine descriptions
(transition rules, an alphabet and an initial tape) into the structured
configuration format consumed by simulator and visualizer tooling.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the settings file")
}

// createLogger configures the application logger.
// Outside debug mode the logger is silent so nothing interferes with the
// payload on stdout.
func createLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// loadConfig reads the settings file named by the --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
