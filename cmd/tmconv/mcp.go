package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmsim/tmconv"
	mcpAdapter "github.com/tmsim/tmconv/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Exposes the converter to agent tooling over the Model Context
Protocol. The convert_source and render_graph tools are served on
stdin/stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		conv := tmconv.New(tmconv.WithLogger(createLogger(cmd)))

		server := mcpAdapter.NewServer(conv)
		if err := server.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
