package filelister

// UniqueFiles returns paths in their original order, simplified and with
// duplicates removed. Two paths are duplicates when their simplified forms
// are the same file name according to cmp.
func UniqueFiles(paths []string, cmp Comparator) []string {
	seen := make(map[string]bool)
	var result []string
	for _, p := range paths {
		clean := SimplifyPath(p)
		key := cmp.key(clean)
		if !seen[key] {
			seen[key] = true
			result = append(result, clean)
		}
	}
	return result
}
