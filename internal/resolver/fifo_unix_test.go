//go:build unix

package resolver

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeFIFO creates a named pipe at path.
func makeFIFO(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, syscall.Mkfifo(path, 0644))
}
