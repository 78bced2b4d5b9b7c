package usecase

import (
	"context"
	"sort"
	"time"

	"talent-crm/internal/reporting"
	"talent-crm/internal/repository"

	"github.com/google/uuid"
)

type TaskItem struct {
	TaskID      uuid.UUID `json:"task_id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	CandidateID uuid.UUID `json:"candidate_id"`
	DueDate     time.Time `json:"due_date"`
	Overdue     bool      `json:"overdue"`
}

type TaskUsecase interface {
	ListByDueWindow(ctx context.Context, window reporting.Window) ([]TaskItem, error)
}

type Tasks struct {
	repo repository.TaskRepository
	now  func() time.Time
}

func NewTaskUsecase(repo repository.TaskRepository) *Tasks {
	return &Tasks{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// ListByDueWindow filters on the due date, which is future-facing: "this
// week" means upcoming within seven days, "later" strictly beyond that.
// Overdue is derived per task at read time.
func (u *Tasks) ListByDueWindow(ctx context.Context, window reporting.Window) ([]TaskItem, error) {
	switch window {
	case reporting.WindowAll, reporting.WindowToday, reporting.WindowThisWeek, reporting.WindowThisMonth, reporting.WindowLater:
	default:
		return nil, ErrInvalidInput
	}

	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	now := u.now()
	out := make([]TaskItem, 0, len(tasks))
	for _, t := range tasks {
		if !reporting.InWindow(t.DueDate, window, reporting.DirectionFuture, now) {
			continue
		}
		out = append(out, TaskItem{
			TaskID:      t.ID,
			Title:       t.Title,
			Status:      string(t.Status),
			CandidateID: t.CandidateID,
			DueDate:     t.DueDate,
			Overdue:     t.Overdue(now),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})

	return out, nil
}
