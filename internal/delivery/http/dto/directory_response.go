package dto

import "github.com/google/uuid"

type CandidateResponse struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	Tags        []string  `json:"tags"`
	Skills      []string  `json:"skills"`
	CreatedAt   string    `json:"created_at"`
}

type JobResponse struct {
	JobID     uuid.UUID `json:"job_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"created_at"`
}
