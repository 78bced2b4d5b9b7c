package reporting

import (
	"reflect"
	"testing"
	"time"
)

func TestAggregateByCategory_EmptyInput(t *testing.T) {
	buckets := AggregateByCategory([]string{}, func(s string) string { return s }, []string{"new", "contacted", "hired"})

	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	for _, b := range buckets {
		if b.Count != 0 || b.Percent != 0 {
			t.Fatalf("expected zero bucket, got %+v", b)
		}
	}
}

func TestAggregateByCategory_CountsAndPercent(t *testing.T) {
	records := []string{"new", "new", "hired", "mystery"}
	known := []string{"new", "contacted", "hired"}

	buckets := AggregateByCategory(records, func(s string) string { return s }, known)

	want := []Bucket{
		{Label: "new", Count: 2, Percent: 50},
		{Label: "contacted", Count: 0, Percent: 0},
		{Label: "hired", Count: 1, Percent: 25},
	}
	if !reflect.DeepEqual(buckets, want) {
		t.Fatalf("expected %+v, got %+v", want, buckets)
	}

	// Unknown values stay out of every bucket; the sum equals the input
	// restricted to known values.
	sum := 0
	for _, b := range buckets {
		sum += b.Count
	}
	if sum != 3 {
		t.Fatalf("expected bucket sum 3, got %d", sum)
	}
}

func TestRecentN(t *testing.T) {
	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	type item struct {
		ID string
		At time.Time
	}
	items := []item{
		{"a", base.AddDate(0, 0, -3)},
		{"b", base},
		{"c", base.AddDate(0, 0, -1)},
		{"d", base}, // same timestamp as b, must stay behind it
		{"e", base.AddDate(0, 0, -9)},
	}

	got := RecentN(items, func(it item) time.Time { return it.At }, 3)

	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	want := []string{"b", "d", "c"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}

	if n := len(RecentN(items, func(it item) time.Time { return it.At }, 0)); n != 0 {
		t.Fatalf("expected empty result for n=0, got %d", n)
	}
	if n := len(RecentN(items, func(it item) time.Time { return it.At }, 50)); n != len(items) {
		t.Fatalf("expected all items when n exceeds input, got %d", n)
	}
}
