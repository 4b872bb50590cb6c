//go:build !linux

package filelister

// DefaultCasePolicy is the file name comparison rule for this build target.
// macOS, Windows and the BSD targets are treated as case-insensitive.
const DefaultCasePolicy = CaseInsensitive
