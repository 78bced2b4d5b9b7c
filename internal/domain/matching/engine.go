package matching

import "strings"

// Entity is the matchable reduction of a candidate or a job. It is built per
// request from the richer domain records and never stored.
type Entity struct {
	Location string
	Tags     []string
	Skills   []string
}

type Result struct {
	Score          int
	SharedKeywords []string
	LocationMatch  bool
}

const (
	baseScore        = 40
	pointsPerKeyword = 10
	keywordBonusCap  = 40
	locationBonus    = 10
)

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollectKeywords flattens tags then skills into a normalized keyword list,
// dropping empties and later duplicates while keeping first-seen order.
func CollectKeywords(e Entity) []string {
	out := make([]string, 0, len(e.Tags)+len(e.Skills))
	seen := make(map[string]struct{}, len(e.Tags)+len(e.Skills))

	add := func(raw string) {
		kw := Normalize(raw)
		if kw == "" {
			return
		}
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}

	for _, t := range e.Tags {
		add(t)
	}
	for _, s := range e.Skills {
		add(s)
	}
	return out
}

// Score computes the keyword-overlap match between a candidate and a job.
// Base 40, plus 10 per shared keyword capped at 40, plus 10 when both
// locations normalize non-empty and equal. Missing fields contribute zero;
// there is no error path.
func Score(candidate, job Entity) Result {
	candidateKeywords := CollectKeywords(candidate)
	jobKeywords := CollectKeywords(job)

	jobSet := make(map[string]struct{}, len(jobKeywords))
	for _, kw := range jobKeywords {
		jobSet[kw] = struct{}{}
	}

	// Shared keywords keep candidate-side iteration order.
	shared := make([]string, 0, len(candidateKeywords))
	for _, kw := range candidateKeywords {
		if _, ok := jobSet[kw]; ok {
			shared = append(shared, kw)
		}
	}

	score := baseScore

	bonus := pointsPerKeyword * len(shared)
	if bonus > keywordBonusCap {
		bonus = keywordBonusCap
	}
	score += bonus

	candidateLoc := Normalize(candidate.Location)
	locationMatch := candidateLoc != "" && candidateLoc == Normalize(job.Location)
	if locationMatch {
		score += locationBonus
	}

	return Result{
		Score:          clampInt(score, 0, 100),
		SharedKeywords: shared,
		LocationMatch:  locationMatch,
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
