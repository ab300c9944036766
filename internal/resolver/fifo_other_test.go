//go:build !unix

package resolver

import "testing"

func makeFIFO(t *testing.T, path string) {
	t.Helper()
	t.Skip("named pipes are not supported on this platform")
}
