// Package config reads the named values that drive a copie invocation.
//
// All reads go through the Source interface so that the resolver and the
// CLI can be tested without touching the real process environment.
package config

import (
	"os"
	"strconv"

	"github.com/mmr-tortoise/copie/internal/model"
)

// Environment variable names recognised by copie.
const (
	// FromVar names the file to copy from.
	FromVar = "COPIE_FROM"

	// ToVar names the file to copy to.
	ToVar = "COPIE_TO"

	// ExitCodeVar overrides the exit code used on success.
	ExitCodeVar = "COPIE_EXIT_CODE"

	// DebugVar enables debug logging on stderr when non-empty.
	DebugVar = "COPIE_DEBUG"
)

// Source looks up named configuration values.
type Source interface {
	// Lookup returns the value of name and whether it is set.
	Lookup(name string) (string, bool)
}

// EnvSource reads values from the process environment.
type EnvSource struct{}

// Lookup implements Source using os.LookupEnv.
func (EnvSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapSource is a fixed set of values, used by tests and embedders.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// LoadInputs assembles the three optional path inputs from src and the
// positional arguments. Only args[0] is considered. A variable that is set
// to the empty string counts as absent.
func LoadInputs(src Source, args []string) model.InputPaths {
	var in model.InputPaths
	if len(args) > 0 {
		in.Argument = args[0]
	}
	in.From = lookup(src, FromVar)
	in.To = lookup(src, ToVar)
	return in
}

// SuccessCode returns the exit code to use when the copy succeeds.
//
// COPIE_EXIT_CODE is parsed as a base-10 32-bit signed integer. When it is
// unset or unparseable the default ExitSuccess is returned; a bad value is
// never an error.
func SuccessCode(src Source) model.ExitCode {
	raw, ok := src.Lookup(ExitCodeVar)
	if !ok {
		return model.ExitSuccess
	}
	code, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return model.ExitSuccess
	}
	return model.ExitCode(code)
}

// Debug reports whether debug logging was requested.
func Debug(src Source) bool {
	return lookup(src, DebugVar) != ""
}

func lookup(src Source, name string) string {
	v, _ := src.Lookup(name)
	return v
}
