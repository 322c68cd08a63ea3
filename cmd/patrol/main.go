package main

import (
	"os"

	"github.com/grovetools/patrol/cli"
	"github.com/grovetools/patrol/cmd"
)

func main() {
	rootCmd := cmd.NewScanCmd()

	// Add subcommands
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
