// Package model defines the domain types and value objects for the
// copie CLI.
//
// This package contains pure data structures with no external dependencies.
// InputPaths and Operation are transient: there is no persistent state.
//
// The package also defines exit codes (ExitCode), failure kinds (ErrorKind)
// and a custom error type (CLIError) that carries both for proper OS process
// exit handling.
package model
