// Package main is the entry point for the copie CLI.
//
// copie copies a file from or to paths given in the COPIE_FROM and COPIE_TO
// environment variables or as its single argument. All functionality lives
// in the internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"github.com/mmr-tortoise/copie/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Execute exits the process with the resolved exit code.
	cli.Execute()
}
