// Package fileops provides the filesystem operations the copy resolver
// depends on: existence and kind probes, and a single whole-file copy.
//
// Design decisions:
//   - The byte copy is delegated to github.com/otiai10/copy rather than a
//     hand-written io.Copy loop. The library opens, truncates and closes both
//     handles on every path and carries the source permission bits over.
//   - Probes follow symbolic links, like a plain stat. A dangling link
//     therefore does not exist.
//   - Missing parent directories are not created. Copying into a
//     nonexistent directory is a copy failure.
package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// FS is the set of filesystem operations the resolver needs.
// Copier is the OS implementation; tests substitute fakes.
type FS interface {
	// Exists reports whether path refers to an existing filesystem entry.
	Exists(path string) bool

	// IsDir reports whether path refers to an existing directory.
	IsDir(path string) bool

	// Copy replaces the contents of dst with the contents of src.
	Copy(src, dst string) error
}

// Copier implements FS on top of the operating system.
//
// It is stateless; the struct exists as a receiver so that it can be passed
// where an FS is expected.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Exists reports whether path exists. Any stat error, not only
// "not exist", is reported as false.
func (c *Copier) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func (c *Copier) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Copy copies the regular file src to dst, creating dst if needed and
// truncating it otherwise.
//
// The copy is not atomic. If it fails partway, dst may be left partially
// written and is not cleaned up.
func (c *Copier) Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: errIsDirectory}
	}
	// Pipes, devices and sockets would be recreated at dst, not read.
	if !info.Mode().IsRegular() {
		return &fs.PathError{Op: "copy", Path: src, Err: errNotRegular}
	}

	// The library would create missing parents with MkdirAll; refuse instead.
	if _, err := os.Stat(filepath.Dir(dst)); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return &fs.PathError{Op: "open", Path: dst, Err: err}
	}

	return copy.Copy(src, dst, copy.Options{
		// Copy the target of a link, never the link itself.
		OnSymlink: func(string) copy.SymlinkAction { return copy.Deep },
	})
}

var (
	errIsDirectory = errors.New("is a directory")
	errNotRegular  = errors.New("is neither a regular file nor a symlink to a regular file")
)
