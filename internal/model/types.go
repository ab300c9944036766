// Package model defines the domain types for the copie CLI.
//
// All entities here live for a single invocation: they are built from the
// command line and the environment at startup, consumed by the one copy
// operation, and discarded when the process exits.
package model

import (
	"errors"
	"fmt"
)

// InputPaths holds the three optional path inputs of an invocation.
// An empty string means the input is absent.
type InputPaths struct {
	// Argument is the first positional command-line argument (FILE).
	// Depending on which environment variable accompanies it, it is
	// either the file to read from or the file to replace.
	Argument string `json:"argument,omitempty"`

	// From is the value of COPIE_FROM, the file to copy from.
	From string `json:"from,omitempty"`

	// To is the value of COPIE_TO, the file to copy to.
	To string `json:"to,omitempty"`
}

// HasArgument reports whether a FILE argument was given.
func (p InputPaths) HasArgument() bool { return p.Argument != "" }

// HasFrom reports whether COPIE_FROM was set.
func (p InputPaths) HasFrom() bool { return p.From != "" }

// HasTo reports whether COPIE_TO was set.
func (p InputPaths) HasTo() bool { return p.To != "" }

// Operation is the resolved (source, destination) pair of a valid
// invocation.
type Operation struct {
	// Source is the file whose bytes are read.
	Source string `json:"source"`

	// Destination is the file that receives the bytes.
	Destination string `json:"destination"`

	// Overwrite reports whether an existing destination is replaced.
	// It is false only when both ends came from environment variables,
	// in which case the destination was verified not to exist.
	Overwrite bool `json:"overwrite"`
}

// String returns a human-readable representation of the operation.
// Format: "source → destination"
func (o Operation) String() string {
	return fmt.Sprintf("%s → %s", o.Source, o.Destination)
}

// ExitCode defines the process exit codes of the CLI.
type ExitCode int

const (
	// ExitSuccess is the default success code. It can be replaced per
	// invocation through COPIE_EXIT_CODE.
	ExitSuccess ExitCode = 0

	// ExitFailure is returned for every failure, whatever COPIE_EXIT_CODE
	// says. It is handed to os.Exit as-is; POSIX shells observe it as 255.
	ExitFailure ExitCode = -1
)

// ErrorKind classifies why an invocation failed.
type ErrorKind string

const (
	// KindAmbiguousInput: COPIE_FROM, COPIE_TO and FILE were all given.
	KindAmbiguousInput ErrorKind = "ambiguous-input"

	// KindMissingPath: a path needed to complete the copy was not given.
	KindMissingPath ErrorKind = "missing-path"

	// KindNotFound: a path that must exist does not.
	KindNotFound ErrorKind = "not-found"

	// KindIsDirectory: a path that must be a file is a directory.
	KindIsDirectory ErrorKind = "is-directory"

	// KindDestinationExists: COPIE_TO already exists and overwriting is
	// not allowed for env-to-env copies.
	KindDestinationExists ErrorKind = "destination-exists"

	// KindCopyFailed: the copy primitive itself reported an error.
	KindCopyFailed ErrorKind = "copy-failed"

	// KindUnknown is the catch-all for a state no rule matched.
	KindUnknown ErrorKind = "unknown"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// IsValid checks whether the ErrorKind value is one of the predefined kinds.
func (k ErrorKind) IsValid() bool {
	switch k {
	case KindAmbiguousInput, KindMissingPath, KindNotFound, KindIsDirectory,
		KindDestinationExists, KindCopyFailed, KindUnknown:
		return true
	default:
		return false
	}
}

// CLIError is a custom error type that carries an exit code and a kind.
// This allows the CLI layer to translate resolver failures into the
// process exit code and lets tests assert on the failure reason without
// matching message text.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Kind classifies the failure.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new failure CLIError of the given kind.
func NewCLIError(kind ErrorKind, message string) *CLIError {
	return &CLIError{Code: ExitFailure, Kind: kind, Message: message}
}

// WrapCLIError creates a new failure CLIError that wraps an existing error.
func WrapCLIError(kind ErrorKind, message string, err error) *CLIError {
	return &CLIError{Code: ExitFailure, Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first CLIError in err's chain.
// A nil error has no kind (""); any other error is KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Kind
	}
	return KindUnknown
}
