package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	manifestPath string
	tablesRoot   string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "datatable",
	Short: "Load and inspect exported datatable documents",
	Long: `datatable loads a fixed set of JSON table documents, applies the
format's Defaults inheritance and per-row overrides, and reports on
the result.

Rows are decoded untyped here; programs embedding the library declare
typed rows instead.

  datatable validate   # load every table in the manifest, report failures
  datatable inspect    # load, then dump per-table stats and row names`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "tables.yaml", "manifest file listing table documents")
	rootCmd.PersistentFlags().StringVarP(&tablesRoot, "root", "r", ".", "directory the manifest paths are relative to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each table load")
}

// newLogger builds the CLI's console logger; load events are debug-level and
// only shown with --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
