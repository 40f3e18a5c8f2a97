package main

import (
	"os"

	"github.com/ccstack/ccfeed/internal/errors"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		formatter := errors.NewFormatter(os.Stderr, noColor)
		os.Stderr.WriteString(formatter.Format(err))
		os.Exit(1)
	}
}
