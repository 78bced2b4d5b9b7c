package matching

import (
	"reflect"
	"testing"
)

type scoredID struct {
	ID    string
	Score int
}

func TestRankByScore_Descending(t *testing.T) {
	in := []scoredID{{"a", 50}, {"b", 90}, {"c", 70}}

	got := RankByScore(in, func(s scoredID) int { return s.Score })
	want := []scoredID{{"b", 90}, {"c", 70}, {"a", 50}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankByScore_StableTiesAndDuplicates(t *testing.T) {
	in := []scoredID{{"a", 60}, {"b", 60}, {"a", 60}, {"c", 80}}

	got := RankByScore(in, func(s scoredID) int { return s.Score })
	want := []scoredID{{"c", 80}, {"a", 60}, {"b", 60}, {"a", 60}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected stable tie order %v, got %v", want, got)
	}

	// input untouched
	if in[0].ID != "a" || in[3].ID != "c" {
		t.Fatalf("expected input slice unchanged, got %v", in)
	}
}
