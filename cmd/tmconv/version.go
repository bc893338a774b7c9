package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmsim/tmconv"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tmconv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tmconv version %s\n", tmconv.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
