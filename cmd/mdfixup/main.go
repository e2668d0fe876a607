// Package main is the entry point for the md-fixup CLI.
package main

import (
	"os"

	"github.com/aeolusmd/mdfixup/internal/cli"
	"github.com/aeolusmd/mdfixup/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/aeolusmd/mdfixup/pkg/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		logger := logging.Default()
		logger.Error("run failed", logging.FieldError, err)
	}

	return cli.ExitCodeForError(err)
}
