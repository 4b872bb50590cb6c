//go:build !windows

package filelister

// DefaultBackend returns the backend for this platform, which expands
// shell glob patterns.
func DefaultBackend() Backend {
	return GlobBackend{}
}
