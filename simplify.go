package filelister

import "strings"

// isSeparator reports whether c is a forward or backward slash.
func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// splitPathParts splits a path into parts where every separator is a part
// of its own. Joining the parts gives back the original string.
func splitPathParts(path string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(path); i++ {
		if !isSeparator(path[i]) {
			continue
		}
		if i > start {
			parts = append(parts, path[start:i])
		}
		parts = append(parts, path[i:i+1])
		start = i + 1
	}
	if start < len(path) {
		parts = append(parts, path[start:])
	}
	return parts
}

func isSeparatorPart(s string) bool {
	return len(s) == 1 && isSeparator(s[0])
}

// SimplifyPath collapses doubled separators, "." parts and resolvable ".."
// parts. It never touches the file system.
func SimplifyPath(path string) string {
	parts := splitPathParts(path)
	for i := 0; i < len(parts); i++ {
		switch {
		case parts[i] == ".." && i > 1 && parts[i-2] != "..":
			// "a/.." goes away together with the separator in between.
			// A chain of leading ".." is kept as it is.
			parts = append(parts[:i-2], parts[i+1:]...)
			i = -1
		case i > 0 && parts[i] == ".":
			parts = append(parts[:i], parts[i+1:]...)
			i = -1
		case i > 0 && isSeparatorPart(parts[i]) && isSeparatorPart(parts[i-1]):
			parts = append(parts[:i-1], parts[i:]...)
			i = -1
		}
	}
	return strings.Join(parts, "")
}
