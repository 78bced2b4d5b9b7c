package reporting

import (
	"sort"
	"time"
)

// RecentN returns the n most recent items by createdAt, newest first. The
// sort is stable so items sharing a timestamp keep their input order.
func RecentN[T any](items []T, createdAt func(T) time.Time, n int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}

	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
