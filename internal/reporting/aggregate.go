package reporting

// Bucket is one row of a categorical rollup.
type Bucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// AggregateByCategory counts records per known category value, preserving
// the order of known. Values outside known stay out of every bucket. The
// percent denominator is the full record count, floored at 1 so an empty
// input yields zero percents instead of a division by zero.
func AggregateByCategory[T any](records []T, category func(T) string, known []string) []Bucket {
	counts := make(map[string]int, len(known))
	for _, r := range records {
		counts[category(r)]++
	}

	denom := len(records)
	if denom < 1 {
		denom = 1
	}

	out := make([]Bucket, 0, len(known))
	for _, label := range known {
		c := counts[label]
		out = append(out, Bucket{
			Label:   label,
			Count:   c,
			Percent: 100 * float64(c) / float64(denom),
		})
	}
	return out
}
