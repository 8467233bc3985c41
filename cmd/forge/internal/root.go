package internal

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "forge is a recipe set for building native libraries and tools",
	Long: `forge holds the build recipes for miscellaneous native libraries and
command-line tools: where to fetch each source, how to verify it, which
options to configure it with, and how to fix up the installed artifacts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
