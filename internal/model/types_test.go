package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInputPaths_Presence verifies that an empty string counts as absent.
func TestInputPaths_Presence(t *testing.T) {
	tests := []struct {
		name    string
		in      InputPaths
		argPath bool
		from    bool
		to      bool
	}{
		{"none", InputPaths{}, false, false, false},
		{"argument only", InputPaths{Argument: "a.txt"}, true, false, false},
		{"from only", InputPaths{From: "a.txt"}, false, true, false},
		{"to only", InputPaths{To: "b.txt"}, false, false, true},
		{"all", InputPaths{Argument: "a", From: "b", To: "c"}, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.argPath, tt.in.HasArgument())
			assert.Equal(t, tt.from, tt.in.HasFrom())
			assert.Equal(t, tt.to, tt.in.HasTo())
		})
	}
}

func TestOperation_String(t *testing.T) {
	op := Operation{Source: "in.json", Destination: "out.json"}
	assert.Equal(t, "in.json → out.json", op.String())
}

// TestExitCode_Values pins the exit codes, since scripts depend on them.
func TestExitCode_Values(t *testing.T) {
	assert.Equal(t, ExitCode(0), ExitSuccess)
	assert.Equal(t, ExitCode(-1), ExitFailure)
}

// TestErrorKind_IsValid checks that only defined kinds pass validation.
func TestErrorKind_IsValid(t *testing.T) {
	for _, k := range []ErrorKind{
		KindAmbiguousInput, KindMissingPath, KindNotFound, KindIsDirectory,
		KindDestinationExists, KindCopyFailed, KindUnknown,
	} {
		t.Run(k.String(), func(t *testing.T) {
			assert.True(t, k.IsValid())
		})
	}
	assert.False(t, ErrorKind("invalid").IsValid())
	assert.False(t, ErrorKind("").IsValid())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(KindMissingPath, "missing file to read or replace")
		assert.Equal(t, ExitFailure, err.Code)
		assert.Equal(t, KindMissingPath, err.Kind)
		assert.Equal(t, "missing file to read or replace", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(KindCopyFailed, "failed to copy from 'a' to 'b'", inner)
		assert.Equal(t, ExitFailure, err.Code)
		assert.Equal(t, "failed to copy from 'a' to 'b': permission denied", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("disk full")
		err := WrapCLIError(KindCopyFailed, "failed to copy", inner)
		assert.True(t, errors.Is(err, inner))
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindNotFound, KindOf(NewCLIError(KindNotFound, "gone")))

	// A CLIError wrapped by fmt.Errorf is still found.
	wrapped := fmt.Errorf("context: %w", NewCLIError(KindIsDirectory, "dir"))
	assert.Equal(t, KindIsDirectory, KindOf(wrapped))
}
