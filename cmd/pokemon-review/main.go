package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pokemon-review",
	Short: "Pokemon review REST API",
	Long: `pokemon-review serves a CRUD API for pokemon, their owners, categories,
countries, reviewers and reviews.

Configuration is read from POKEREVIEW_ prefixed environment variables and
an optional .env file. Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
