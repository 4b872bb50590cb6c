//go:build windows

package filelister

// DefaultBackend returns the backend for this platform, which uses
// FindFirstFile and FindNextFile.
func DefaultBackend() Backend {
	return NewNativeBackend()
}
