package filelister

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobBackend expands the path as a shell glob pattern, like glob(3) with
// GLOB_MARK: directories are returned with a trailing "/", wildcards do not
// match a leading "." and the part of the path before the first wildcard is
// kept exactly as given. Braces are not expanded.
type GlobBackend struct{}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

func isPathSeparator(c byte) bool {
	return c == '/' || c == os.PathSeparator
}

// splitGlob splits pattern into the literal directory prefix, including its
// trailing separator, and the rest, which starts with the first element
// that holds a wildcard.
func splitGlob(pattern string) (prefix, rest string) {
	end := strings.IndexAny(pattern, "*?[")
	if end < 0 {
		return pattern, ""
	}
	for i := end - 1; i >= 0; i-- {
		if isPathSeparator(pattern[i]) {
			return pattern[:i+1], pattern[i+1:]
		}
	}
	return "", pattern
}

// shellPattern turns the rest of a glob(3) pattern into a doublestar
// pattern with the same meaning.
func shellPattern(rest string) string {
	rest = filepath.ToSlash(rest)
	// "**" is just "*" to a shell
	for strings.Contains(rest, "**") {
		rest = strings.ReplaceAll(rest, "**", "*")
	}
	rest = strings.ReplaceAll(rest, "{", `\{`)
	return strings.ReplaceAll(rest, "}", `\}`)
}

// hiddenMatch returns true if a wildcard element of pattern matched a name
// that starts with ".", which a shell would not do.
func hiddenMatch(pattern, match string) bool {
	pp := strings.Split(pattern, "/")
	mp := strings.Split(match, "/")
	if len(pp) != len(mp) {
		return false
	}
	for i, p := range pp {
		if hasMeta(p) && !strings.HasPrefix(p, ".") && strings.HasPrefix(mp[i], ".") {
			return true
		}
	}
	return false
}

// ListEntries expands path, or path+"*" when path ends with a separator.
func (GlobBackend) ListEntries(path string) ([]Entry, error) {
	pattern := path
	if n := len(path); n > 0 && isPathSeparator(path[n-1]) {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		pattern += "*"
	}

	prefix, rest := splitGlob(pattern)
	if rest == "" {
		// No wildcards, so the path only has to exist
		if _, err := os.Lstat(pattern); err != nil {
			return nil, err
		}
		return []Entry{globEntry(pattern)}, nil
	}

	dir := prefix
	if dir == "" {
		dir = "."
	}
	rest = shellPattern(rest)
	matches, err := doublestar.Glob(os.DirFS(dir), rest,
		doublestar.WithFailOnIOErrors(),
		doublestar.WithFailOnPatternNotExist())
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		if hiddenMatch(rest, m) {
			continue
		}
		entries = append(entries, globEntry(prefix+filepath.FromSlash(m)))
	}
	return entries, nil
}

// globEntry stats name and marks it if it is a directory.
func globEntry(name string) Entry {
	fi, err := os.Stat(name)
	if err == nil && fi.IsDir() {
		return Entry{Name: markDir(name), IsDir: true}
	}
	return Entry{Name: name}
}

// markDir appends a "/" to name unless it already ends with a separator.
func markDir(name string) string {
	if n := len(name); n > 0 && isPathSeparator(name[n-1]) {
		return name
	}
	return name + "/"
}
