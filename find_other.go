//go:build !windows

package filelister

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// hostPath turns the "\" separators used by NativeBackend into "/".
func hostPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// findFiles emulates FindFirstFile and FindNextFile by reading the directory
// part of pattern and matching the last element against each entry.
func findFiles(pattern string, fn func(name string, isDir bool)) error {
	dir, match := filepath.Split(hostPath(pattern))
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	found := false
	for _, e := range entries {
		ok, err := filepath.Match(match, e.Name())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		found = true
		fn(e.Name(), e.IsDir())
	}
	if !found {
		return fs.ErrNotExist
	}
	return nil
}
