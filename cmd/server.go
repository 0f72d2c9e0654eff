package cmd

import (
	"ArtLens/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the ArtLens HTTP server",
	Long:  `Run the ArtLens HTTP server: catalog API, collections, and the live AR viewer socket.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
