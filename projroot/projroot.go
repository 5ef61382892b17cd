// Package projroot expresses paths relative to the root of the project
// that contains them.
package projroot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Find walks up from the directory of path looking for a directory that
// contains marker. It returns that directory, or "" when no ancestor has it.
func Find(path, marker string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(abs)
	for {
		_, err := os.Stat(filepath.Join(dir, marker))
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve returns path relative to the nearest ancestor directory holding
// marker, using forward slashes. When no ancestor holds marker, path itself
// is returned with forward slashes.
func Resolve(path, marker string) (string, error) {
	root, err := Find(path, marker)
	if err != nil {
		return "", err
	}
	if root == "" {
		return filepath.ToSlash(path), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
