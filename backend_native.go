package filelister

import (
	"strings"

	"github.com/xyproto/files"
)

// findFunc calls fn for every file system entry matching pattern, in the
// manner of FindFirstFile and FindNextFile. It returns an error if nothing
// could be listed.
type findFunc func(pattern string, fn func(name string, isDir bool)) error

// NativeBackend lists entries with the Windows style find-first/find-next
// primitive. Paths use "\" as separator and directories are told apart by
// their attribute flag, not by a trailing separator.
type NativeBackend struct {
	find findFunc
}

// NewNativeBackend returns a NativeBackend for this platform. On Windows it
// calls FindFirstFile, elsewhere the directory listing is emulated.
func NewNativeBackend() *NativeBackend {
	return &NativeBackend{find: findFiles}
}

// searchPattern returns the pattern to pass to the find primitive and the
// directory prefix used to form the names of the entries found.
func searchPattern(cleaned string, isDir bool) (pattern, baseDir string) {
	pattern = cleaned
	if isDir && cleaned != "" {
		switch cleaned[len(cleaned)-1] {
		case '\\':
			pattern += "*"
			baseDir = cleaned
		case '*':
			baseDir = cleaned[:len(cleaned)-1]
		default:
			pattern += `\*`
			baseDir = cleaned + `\`
		}
		return pattern, baseDir
	}
	if pos := strings.LastIndexByte(cleaned, '\\'); pos >= 0 {
		baseDir = cleaned[:pos+1]
	}
	return pattern, baseDir
}

// ListEntries lists path, which may name a directory, a file or a pattern.
func (b *NativeBackend) ListEntries(path string) ([]Entry, error) {
	find := b.find
	if find == nil {
		find = findFiles
	}
	cleaned := strings.ReplaceAll(path, "/", `\`)
	pattern, baseDir := searchPattern(cleaned, files.IsDir(hostPath(cleaned)))

	var entries []Entry
	err := find(pattern, func(name string, isDir bool) {
		// Also skips "." and ".."
		if name == "" || name[0] == '.' {
			return
		}
		entries = append(entries, Entry{Name: baseDir + name, IsDir: isDir})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
