package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Location  string
	Tags      []string
	Skills    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
