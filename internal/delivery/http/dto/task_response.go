package dto

import "github.com/google/uuid"

type TaskResponse struct {
	TaskID      uuid.UUID `json:"task_id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	CandidateID uuid.UUID `json:"candidate_id"`
	DueDate     string    `json:"due_date"`
	Overdue     bool      `json:"overdue"`
}
