//go:build linux

package filelister

// DefaultCasePolicy is the file name comparison rule for this build target.
// Linux file systems are case-sensitive.
const DefaultCasePolicy = CaseSensitive
