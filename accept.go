package filelister

import (
	"slices"
	"strings"
)

// SourceExts are the recognized C/C++ source file extensions.
var SourceExts = []string{".cpp", ".cxx", ".cc", ".c", ".c++"}

// asciiLower lowercases A-Z only, independent of locale.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// fileExtension returns everything from the last "." of filename, including
// the dot, or "" when there is no dot.
func fileExtension(filename string) string {
	pos := strings.LastIndexByte(filename, '.')
	if pos < 0 {
		return ""
	}
	return filename[pos:]
}

// AcceptFile returns true if filename has one of the C/C++ source extensions.
// Header files are not accepted.
func AcceptFile(filename string) bool {
	ext := fileExtension(filename)
	if ext == "" {
		return false
	}
	return slices.Contains(SourceExts, asciiLower(ext))
}
