package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Job struct {
	ID        uuid.UUID
	Title     string
	Company   string
	Location  string
	Tags      []string
	Status    string
	CreatedAt time.Time
}
