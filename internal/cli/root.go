// Package cli implements the cobra-based command line of copie.
//
// There are no subcommands: the root command takes an optional FILE and
// hands it, together with COPIE_FROM and COPIE_TO, to the resolver. This
// file also owns the translation of the result into an exit code and the
// single error line on stderr.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/copie/internal/config"
	"github.com/mmr-tortoise/copie/internal/fileops"
	"github.com/mmr-tortoise/copie/internal/model"
	"github.com/mmr-tortoise/copie/internal/resolver"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// src supplies COPIE_FROM and COPIE_TO, fs performs the probes and the
// copy, and log receives the debug trace.
func NewRootCommand(src config.Source, fs fileops.FS, log zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "copie [FILE]",
		Short: "Copy a file from or to paths given in environment variables",
		Long: `copie copies data from or to the specified file.

COPIE_FROM names the file to copy from and COPIE_TO the file to copy to.

  COPIE_FROM + FILE      copies COPIE_FROM over FILE, replacing it.
  COPIE_TO + FILE        copies FILE over COPIE_TO, replacing it.
  COPIE_FROM + COPIE_TO  copies COPIE_FROM to COPIE_TO; COPIE_TO must not exist.

On success copie exits with COPIE_EXIT_CODE (default 0). On failure it
prints the reason to stderr and exits with -1.

Set COPIE_DEBUG to any non-empty value to trace the decision on stderr.

Examples:
  COPIE_FROM=myfile.json copie target_file.json
  COPIE_TO=target_file.json copie myfile.json
  VISUAL=copie EDITOR=copie COPIE_TO=./tmp/msg git commit`,

		// At most one positional argument: the file to read or replace.
		Args: cobra.MaximumNArgs(1),

		// Usage and errors are printed by Run, in the one-line format.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			in := config.LoadInputs(src, args)
			_, err := resolver.New(fs, log).Run(in)
			return err
		},
	}

	return rootCmd
}

// Run executes copie with the given arguments (without the program name)
// and returns the exit code. It never calls os.Exit.
//
// The success code comes from COPIE_EXIT_CODE; every failure maps to
// model.ExitFailure regardless of it.
func Run(args []string, src config.Source, stdout, stderr io.Writer) model.ExitCode {
	rootCmd := NewRootCommand(src, fileops.NewCopier(), newLogger(src, stderr))
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)
		return exitCodeFor(err)
	}
	return config.SuccessCode(src)
}

// Execute runs copie against the real process environment and exits.
// This is the main entry point called from main.go.
func Execute() {
	code := Run(os.Args[1:], config.EnvSource{}, os.Stdout, os.Stderr)
	os.Exit(int(code))
}

// exitCodeFor maps an error to its exit code. CLIError carries its own;
// anything else, such as cobra's argument errors, is a plain failure.
func exitCodeFor(err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitFailure
}

// printError writes the single "error: <message>" line.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", err)
}

// newLogger returns a console logger on w when COPIE_DEBUG is set and a
// no-op logger otherwise, so that stderr normally carries only the error line.
func newLogger(src config.Source, w io.Writer) zerolog.Logger {
	if !config.Debug(src) {
		return zerolog.Nop()
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
