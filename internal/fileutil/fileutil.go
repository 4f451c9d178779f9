// Package fileutil holds file permission constants and write helpers shared
// by dtogen packages.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for directories created for
// generated output.
const DirReadableByAll os.FileMode = 0o755

// EnsureParentDir creates the parent directory of path (and any missing
// ancestors). It succeeds when the directory already exists.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirReadableByAll); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteTemp writes data to a new temporary file next to path and returns
// the temporary file's name. The file gets mode perm. On failure no
// temporary file is left behind.
func WriteTemp(path string, data []byte, perm os.FileMode) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()
	cleanup := func(cause error) (string, error) {
		_ = f.Close()
		_ = os.Remove(name)
		return "", cause
	}

	if _, err := f.Write(data); err != nil {
		return cleanup(err)
	}
	if err := f.Sync(); err != nil {
		return cleanup(err)
	}
	if err := f.Chmod(perm); err != nil {
		return cleanup(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
