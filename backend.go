package filelister

import (
	"fmt"
	"strings"
)

// Entry is one item reported by a Backend. Name is usable as a path, either
// for adding it to the result or for listing it again.
type Entry struct {
	Name  string
	IsDir bool
}

// Backend lists the entries found at a path. A path that ends with a
// separator means "everything directly below this directory".
// Any error is treated by the Lister as "no entries".
type Backend interface {
	ListEntries(path string) ([]Entry, error)
}

// BackendNames are the names accepted by BackendByName.
var BackendNames = []string{"default", "glob", "native", "null"}

// BackendByName returns the backend with the given name.
// An empty name selects DefaultBackend.
func BackendByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultBackend(), nil
	case "glob", "posix":
		return GlobBackend{}, nil
	case "native", "windows":
		return NewNativeBackend(), nil
	case "null", "none":
		return NullBackend{}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (valid: %s)", name, strings.Join(BackendNames, ", "))
}

// NullBackend never lists anything. It is used when the directory traversal
// is done by the host application instead.
type NullBackend struct{}

// ListEntries always returns no entries.
func (NullBackend) ListEntries(string) ([]Entry, error) {
	return nil, nil
}
