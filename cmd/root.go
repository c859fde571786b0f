package main

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	var ignoreCase bool

	rootCmd := &cobra.Command{
		Use:   "minigrep [flags] QUERY FILE",
		Short: "Print lines of FILE containing QUERY",
		Long: `minigrep prints every line of FILE that contains QUERY as a plain substring.

Search is case-sensitive unless -i is given or the CASE_INSENSITIVE
environment variable is present. Use "-" as FILE to read stdin.

Example usage:
  minigrep duct poem.txt
  CASE_INSENSITIVE=1 minigrep rUsT poem.txt
  minigrep -- -v notes.txt        # query starting with a dash`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			caseSensitive := parser.ResolveCaseSensitive(viper.New(), ignoreCase)

			// аргументы в том же виде, что и os.Args: [0] - имя программы
			cfg, err := parser.NewConfig(append([]string{os.Args[0]}, args...), caseSensitive)
			if err != nil {
				return fmt.Errorf("problem parsing arguments: %w", err)
			}

			if err := appmode.RunSearch(cfg, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("application error: %w", err)
			}
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "ignore case distinctions (same as setting CASE_INSENSITIVE)")

	rootCmd.AddCommand(newServeCmd(), newVersionCmd())
	return rootCmd
}
