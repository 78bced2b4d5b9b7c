package matching

import "sort"

// RankByScore orders items by descending score. The sort is stable so equal
// scores keep their input order; duplicates pass through untouched.
func RankByScore[T any](items []T, score func(T) int) []T {
	if len(items) == 0 {
		return items
	}

	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})
	return out
}
