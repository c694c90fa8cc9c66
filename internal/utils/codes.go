package utils

import "sort"

// DedupeAndSortCodes removes duplicate and empty reason codes and returns them
// in lexical order, so aggregated code sets are stable regardless of the order
// violations were collected in.
func DedupeAndSortCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	result := make([]string, 0, len(codes))
	for _, c := range codes {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	sort.Strings(result)
	return result
}
