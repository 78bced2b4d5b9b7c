package sampledata

import (
	"context"
	"time"

	"talent-crm/internal/domain"

	"github.com/google/uuid"
)

type TaskSeeder struct{}

func (TaskSeeder) Name() string { return "tasks" }

func (TaskSeeder) Run(ctx context.Context, repos Repos) error {
	now := time.Now().UTC()

	task := func(suffix, title string, status domain.TaskStatus, candidateID uuid.UUID, dueInDays, createdDaysAgo int) domain.Task {
		return domain.Task{
			ID:          uuid.MustParse("d1e2f3a0-5b6c-4d7e-8f90-dd01020304" + suffix),
			Title:       title,
			Status:      status,
			CandidateID: candidateID,
			DueDate:     now.AddDate(0, 0, dueInDays),
			CreatedAt:   now.AddDate(0, 0, -createdDaysAgo),
		}
	}

	items := []domain.Task{
		task("01", "Schedule technical interview", domain.TaskOpen, candidateMira, 2, 3),
		task("02", "Send offer letter", domain.TaskOpen, candidateJonas, 1, 1),
		task("03", "Collect references", domain.TaskInProgress, candidateSofia, 5, 4),
		task("04", "Follow up after screening call", domain.TaskOpen, candidateLena, -2, 8),
		task("05", "Prepare onboarding checklist", domain.TaskOpen, candidateSofia, 12, 2),
		task("06", "Archive rejected application", domain.TaskDone, candidateMira, -10, 20),
	}

	return repos.Tasks.UpsertTasks(ctx, items)
}
