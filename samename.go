package filelister

import (
	"fmt"
	"strings"
)

// CasePolicy decides how two file names are compared.
type CasePolicy int

const (
	// CaseInsensitive compares file names with ASCII case folding.
	CaseInsensitive CasePolicy = iota
	// CaseSensitive compares file names byte by byte.
	CaseSensitive
)

func (p CasePolicy) String() string {
	if p == CaseSensitive {
		return "sensitive"
	}
	return "insensitive"
}

// ParseCasePolicy parses "sensitive" or "insensitive". An empty string gives
// DefaultCasePolicy.
func ParseCasePolicy(s string) (CasePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultCasePolicy, nil
	case "sensitive", "case-sensitive":
		return CaseSensitive, nil
	case "insensitive", "case-insensitive":
		return CaseInsensitive, nil
	}
	return DefaultCasePolicy, fmt.Errorf("unknown case policy %q", s)
}

// Comparator compares file names according to a CasePolicy.
// The zero value is case-insensitive.
type Comparator struct {
	Policy CasePolicy
}

// NewComparator returns a Comparator using the given policy.
func NewComparator(policy CasePolicy) Comparator {
	return Comparator{Policy: policy}
}

// SameFileName returns true if a and b name the same file under c's policy.
func (c Comparator) SameFileName(a, b string) bool {
	if c.Policy == CaseSensitive {
		return a == b
	}
	return equalFoldASCII(a, b)
}

// key returns a string that is equal for all names SameFileName considers equal.
func (c Comparator) key(name string) string {
	if c.Policy == CaseSensitive {
		return name
	}
	return asciiLower(name)
}

// equalFoldASCII is like strings.EqualFold, but only folds A-Z.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// SameFileName compares two file names using DefaultCasePolicy.
func SameFileName(a, b string) bool {
	return NewComparator(DefaultCasePolicy).SameFileName(a, b)
}
