package main

import (
	"github.com/cottand/casesplit/cmd"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "casesplit [subcommand]",
	Short:        "casesplit\n decides which case split a proof goal needs next, and performs it",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.RunCmd)
	rootCmd.AddCommand(cmd.ClassifyCmd)
}
