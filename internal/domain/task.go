package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

func TaskStatuses() []string {
	return []string{
		string(TaskOpen),
		string(TaskInProgress),
		string(TaskDone),
	}
}

type Task struct {
	ID          uuid.UUID
	Title       string
	Status      TaskStatus
	CandidateID uuid.UUID
	DueDate     time.Time
	CreatedAt   time.Time
}

// Overdue is derived on read, never stored: a task counts as overdue when it
// is not done and its due day falls before now's day.
func (t Task) Overdue(now time.Time) bool {
	if t.Status == TaskDone || t.DueDate.IsZero() {
		return false
	}
	due := t.DueDate.UTC()
	today := now.UTC()
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}
