package domain

import (
	"testing"
	"time"
)

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"open due yesterday", Task{Status: TaskOpen, DueDate: now.AddDate(0, 0, -1)}, true},
		{"open due later today", Task{Status: TaskOpen, DueDate: time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC)}, false},
		{"open due tomorrow", Task{Status: TaskOpen, DueDate: now.AddDate(0, 0, 1)}, false},
		{"done due yesterday", Task{Status: TaskDone, DueDate: now.AddDate(0, 0, -1)}, false},
		{"in progress long past due", Task{Status: TaskInProgress, DueDate: now.AddDate(0, 0, -30)}, true},
		{"no due date", Task{Status: TaskOpen}, false},
	}

	for _, tc := range cases {
		if got := tc.task.Overdue(now); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
