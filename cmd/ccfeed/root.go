package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const outputJSON = "json"

var (
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "ccfeed",
	Short: "Resolve product metadata from the Creative Cloud products feed",
	Long: `ccfeed resolves download metadata for Creative Cloud products.

Given a product SAP code it queries the update-distribution feed, picks the
best-matching product and platform entry, and prints the manifest location,
version, display name, icon, and minimum OS version as a field mapping for
the surrounding packaging pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return setupLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		versionCmd,
		resolveCmd,
		completionCmd,
	)
}

func setupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
