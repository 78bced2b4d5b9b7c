package domain

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityNote    ActivityType = "note"
	ActivityMeeting ActivityType = "meeting"
)

func ActivityTypes() []string {
	return []string{
		string(ActivityCall),
		string(ActivityEmail),
		string(ActivityNote),
		string(ActivityMeeting),
	}
}

type Activity struct {
	ID          uuid.UUID
	Type        ActivityType
	Subject     string
	CandidateID uuid.UUID
	CreatedAt   time.Time
}
