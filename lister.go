// Package filelister finds C and C++ source files below a path, and has
// helpers for simplifying paths and comparing file names.
package filelister

import "fmt"

// Logger receives debug messages about locations that were skipped.
type Logger interface {
	LogDebug(message string)
}

// Lister collects C/C++ source files using a Backend.
type Lister struct {
	Backend Backend
	Logger  Logger // may be nil
}

// NewLister returns a Lister that uses DefaultBackend.
func NewLister() *Lister {
	return &Lister{Backend: DefaultBackend()}
}

// NewListerWithBackend returns a Lister that uses the given backend.
func NewListerWithBackend(backend Backend) *Lister {
	return &Lister{Backend: backend}
}

func (l *Lister) debugf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.LogDebug(fmt.Sprintf(format, args...))
	}
}

// RecursiveAddFiles appends the files found at path to filenames.
//
// When recursive is false, every file found at path is added, regardless of
// extension, and directories are ignored. When recursive is true, only
// files accepted by AcceptFile are added and directories are descended into.
// Locations that can not be listed are skipped without an error.
// The existing contents of filenames are never read or changed.
func (l *Lister) RecursiveAddFiles(filenames *[]string, path string, recursive bool) {
	backend := l.Backend
	if backend == nil {
		backend = DefaultBackend()
	}
	entries, err := backend.ListEntries(path)
	if err != nil {
		l.debugf("skipping %s: %v", path, err)
		return
	}
	for _, e := range entries {
		if e.Name == "" || e.Name == "." || e.Name == ".." {
			continue
		}
		if !e.IsDir {
			// If recursive is not used, accept all files given by the user
			if !recursive || AcceptFile(e.Name) {
				*filenames = append(*filenames, e.Name)
			}
		} else if recursive {
			l.RecursiveAddFiles(filenames, e.Name, recursive)
		}
	}
}

// Collect returns the files found at path, see RecursiveAddFiles.
func (l *Lister) Collect(path string, recursive bool) []string {
	var filenames []string
	l.RecursiveAddFiles(&filenames, path, recursive)
	return filenames
}

// RecursiveAddFiles appends the files found at path to filenames, using
// DefaultBackend.
func RecursiveAddFiles(filenames *[]string, path string, recursive bool) {
	NewLister().RecursiveAddFiles(filenames, path, recursive)
}

// Collect returns the files found at path, using DefaultBackend.
func Collect(path string, recursive bool) []string {
	return NewLister().Collect(path, recursive)
}
