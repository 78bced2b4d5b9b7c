package dto

import "github.com/google/uuid"

type CandidateMatchResponse struct {
	CandidateID    uuid.UUID `json:"candidate_id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	MatchScore     int       `json:"match_score"`
	SharedKeywords []string  `json:"shared_keywords"`
	LocationMatch  bool      `json:"location_match"`
}

type JobMatchResponse struct {
	JobID          uuid.UUID `json:"job_id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	MatchScore     int       `json:"match_score"`
	SharedKeywords []string  `json:"shared_keywords"`
	LocationMatch  bool      `json:"location_match"`
}
