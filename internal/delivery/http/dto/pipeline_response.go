package dto

import (
	"talent-crm/internal/reporting"

	"github.com/google/uuid"
)

type BoardItemResponse struct {
	ItemID        uuid.UUID `json:"item_id"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	JobID         uuid.UUID `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Stage         string    `json:"stage"`
	UpdatedAt     string    `json:"updated_at"`
}

type BoardColumnResponse struct {
	Stage string              `json:"stage"`
	Items []BoardItemResponse `json:"items"`
}

type BoardResponse struct {
	Total   int                   `json:"total"`
	Columns []BoardColumnResponse `json:"columns"`
	Buckets []reporting.Bucket    `json:"buckets"`
}

type MoveStageRequest struct {
	Stage string `json:"stage"`
}

type PipelineItemResponse struct {
	ItemID      uuid.UUID `json:"item_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	Stage       string    `json:"stage"`
	UpdatedAt   string    `json:"updated_at"`
}
