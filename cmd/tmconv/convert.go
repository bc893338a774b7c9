package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmsim/tmconv"
	"github.com/tmsim/tmconv/internal/output"
	"github.com/tmsim/tmconv/pkg/domain"
)

// Exit codes form the external-tooling contract: every failure category
// stays distinguishable to callers.
const (
	exitSourceMissing   = 1
	exitOpenFailed      = 2
	exitReadFailed      = 3
	exitMissingAlphabet = 4
	exitMissingTape     = 5
	exitEncodeFailed    = 6
	exitCreateFailed    = 7
	exitWriteFailed     = 8
)

var convertCmd = &cobra.Command{
	Use:   "convert <source>",
	Short: "Convert a machine description to a structured configuration",
	Long: `Reads a line-oriented machine description and writes the structured
configuration: pretty-printed to stdout, or compact when --out names a file.
Lines that match none of the recognized shapes are skipped silently.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outPath, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")
		runConvert(cmd, args[0], outPath, format)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("out", "o", "", "Write the configuration to this file (compact) instead of stdout (pretty)")
	convertCmd.Flags().StringP("format", "f", "", "Output format: json or yaml (default from config file, json otherwise)")
}

func runConvert(cmd *cobra.Command, sourcePath, outPath, format string) {
	logger := createLogger(cmd)

	if format == "" {
		if cfg, err := loadConfig(cmd); err == nil {
			format = cfg.Output.Format
		} else {
			format = output.FormatJSON
		}
	}

	if _, err := os.Stat(sourcePath); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Specified file does not exist!")
		os.Exit(exitSourceMissing)
	}

	source, err := os.Open(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open file! Reason: %v\n", err)
		os.Exit(exitOpenFailed)
	}
	defer source.Close()

	conv := tmconv.New(tmconv.WithLogger(logger))
	cfg, err := conv.Convert(source)
	if err != nil {
		exitConversionError(err)
	}

	if outPath == "" {
		formatter, ferr := output.NewFormatter(format, os.Stdout, true)
		if ferr != nil {
			fmt.Fprintln(os.Stderr, ferr)
			os.Exit(exitEncodeFailed)
		}
		if err := formatter.Format(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error occurred while encoding! Reason: %v\n", err)
			os.Exit(exitEncodeFailed)
		}
		return
	}

	dest, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open file for output! Reason: %v\n", err)
		os.Exit(exitCreateFailed)
	}
	defer dest.Close()

	formatter, ferr := output.NewFormatter(format, dest, false)
	if ferr != nil {
		fmt.Fprintln(os.Stderr, ferr)
		os.Exit(exitWriteFailed)
	}
	if err := formatter.Format(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save output to file! Reason: %v\n", err)
		os.Exit(exitWriteFailed)
	}
}

// exitConversionError terminates with the exit code matching the failure
// category. Both declaration checks are reported in a fixed order; the
// first failing one stops the program.
func exitConversionError(err error) {
	var readErr *tmconv.ReadError
	switch {
	case errors.As(err, &readErr):
		fmt.Fprintf(os.Stderr, "Failed to read next line! Reason: %v\n", readErr.Unwrap())
		os.Exit(exitReadFailed)
	case errors.Is(err, domain.ErrMissingAlphabet):
		fmt.Fprintln(os.Stderr, "No alphabet was provided!")
		os.Exit(exitMissingAlphabet)
	case errors.Is(err, domain.ErrMissingTape):
		fmt.Fprintln(os.Stderr, "No tape was provided!")
		os.Exit(exitMissingTape)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitReadFailed)
	}
}
