// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hightemp/name2cc/internal/config"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	langFlag    string
	candidates  []string
	jsonOutput  bool
	noColor     bool
	concurrency int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "name2cc [query]",
	Short: "Resolve country codes and names to country records",
	Long: `name2cc resolves a free-form string - an ISO-3166 alpha-2 code or a
country name in any of the supported languages - to a country record
(code, English name, dial code, flag).

For a single lookup:
  name2cc Germany
  name2cc de
  name2cc --lang ru Германия

For batch processing (read from stdin):
  cat queries.txt | name2cc

Name matching is case-insensitive and exact; there is no fuzzy matching.
The current language is taken from --lang, or from ` + config.EnvLang + `,
LC_ALL, LC_MESSAGES or LANG when the flag is absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&langFlag, "lang", "", "current language (BCP-47 tag, e.g. ru, zh-Hant)")
	rootCmd.Flags().StringSliceVar(&candidates, "candidates", nil, "restrict name search to these languages, in order")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", config.DefaultBatchConcurrency, "parallel lookups in batch mode")

	// Add subcommands
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (commit %s, built %s)\n", config.AppName, Version, Commit, BuildTime)
	},
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
