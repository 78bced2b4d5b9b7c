package domain

import (
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageNew       Stage = "new"
	StageContacted Stage = "contacted"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// Stages returns the board order of stage labels.
func Stages() []string {
	return []string{
		string(StageNew),
		string(StageContacted),
		string(StageInterview),
		string(StageOffer),
		string(StageHired),
		string(StageRejected),
	}
}

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageContacted, StageInterview, StageOffer, StageHired, StageRejected:
		return true
	}
	return false
}

type PipelineItem struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Stage       Stage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
