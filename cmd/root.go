package cmd

import (
	"fmt"
	"log"
	"os"

	"ArtLens/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "artlens",
	Short: "ArtLens is an art discovery and AR viewing service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting ArtLens server...")
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
