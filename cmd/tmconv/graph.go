package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmsim/tmconv"
	"github.com/tmsim/tmconv/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <source>",
	Short: "Export the machine's transition graph",
	Long:  `Converts the description and outputs a Mermaid diagram (graph TD) of the state transitions.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conv := tmconv.New(tmconv.WithLogger(createLogger(cmd)))

		cfg, err := conv.ConvertFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting source: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(cfg))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
