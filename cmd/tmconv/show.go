package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tmsim/tmconv"
	"github.com/tmsim/tmconv/internal/presentation/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <source>",
	Short: "Display a human-readable summary of the machine",
	Long: `Converts the description and renders a summary (alphabet, tape and
transition table) as styled markdown when stdout is a terminal, or as
plain markdown otherwise.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conv := tmconv.New(tmconv.WithLogger(createLogger(cmd)))

		cfg, err := conv.ConvertFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting source: %v\n", err)
			os.Exit(1)
		}

		markdown := tui.Summary(cfg)

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(markdown)
			return
		}

		tui.PrintBanner(tmconv.Version)
		render := tui.NewRenderer()
		styled, err := render(markdown)
		if err != nil {
			// Fall back to the raw markdown rather than failing the command.
			fmt.Print(markdown)
			return
		}
		fmt.Print(styled)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
