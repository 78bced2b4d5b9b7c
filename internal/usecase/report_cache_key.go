package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"talent-crm/internal/reporting"

	"github.com/google/uuid"
)

type dashboardCacheKeyInput struct {
	Window string `json:"window"`
}

type matchesCacheKeyInput struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Limit    int    `json:"limit"`
	MinScore int    `json:"min_score"`
}

func DashboardCacheKey(w reporting.Window) string {
	return "dashboard:" + hashCacheKey(dashboardCacheKeyInput{Window: string(w)})
}

func MatchesCacheKey(kind string, id uuid.UUID, limit, minScore int) string {
	return "matches:" + hashCacheKey(matchesCacheKeyInput{
		Kind:     kind,
		ID:       id.String(),
		Limit:    limit,
		MinScore: minScore,
	})
}

func hashCacheKey(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "invalid"
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:12])
}
