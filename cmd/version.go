package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set with -ldflags at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minigrep %s (commit %s)\n", Version, GitCommit)
		},
	}
}
