//go:build windows

package filelister

import (
	"errors"

	"golang.org/x/sys/windows"
)

// hostPath returns p as it is, since Windows understands "\".
func hostPath(p string) string {
	return p
}

// findFiles lists pattern with FindFirstFile and FindNextFile.
func findFiles(pattern string, fn func(name string, isDir bool)) error {
	p, err := windows.UTF16PtrFromString(pattern)
	if err != nil {
		return err
	}
	var data windows.Win32finddata
	h, err := windows.FindFirstFile(p, &data)
	if err != nil {
		return err
	}
	defer windows.FindClose(h)
	for {
		fn(windows.UTF16ToString(data.FileName[:]), data.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0)
		if err := windows.FindNextFile(h, &data); err != nil {
			if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
				return nil
			}
			return err
		}
	}
}
