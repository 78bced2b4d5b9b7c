package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-crm/internal/domain"
	"talent-crm/internal/domain/candidate"
	"talent-crm/internal/domain/job"
	"talent-crm/internal/repository"

	"github.com/google/uuid"
)

var pipelineNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func seedPipelineUsecase(t *testing.T) (*Pipeline, []domain.PipelineItem) {
	t.Helper()
	ctx := context.Background()

	candID := uuid.New()
	jobID := uuid.New()

	cands := repository.NewMemoryCandidateRepository()
	if err := cands.UpsertCandidates(ctx, []candidate.Candidate{{ID: candID, Name: "Mira"}}); err != nil {
		t.Fatalf("seed candidates: %v", err)
	}
	jobs := repository.NewMemoryJobRepository()
	if err := jobs.UpsertJobs(ctx, []job.Job{{ID: jobID, Title: "Backend Engineer", Status: job.StatusOpen}}); err != nil {
		t.Fatalf("seed jobs: %v", err)
	}

	items := []domain.PipelineItem{
		{ID: uuid.New(), CandidateID: candID, JobID: jobID, Stage: domain.StageNew, CreatedAt: pipelineNow.AddDate(0, 0, -3)},
		{ID: uuid.New(), CandidateID: candID, JobID: jobID, Stage: domain.StageNew, CreatedAt: pipelineNow.AddDate(0, 0, -2)},
		{ID: uuid.New(), CandidateID: candID, JobID: jobID, Stage: domain.StageInterview, CreatedAt: pipelineNow.AddDate(0, 0, -1)},
	}
	pipe := repository.NewMemoryPipelineRepository()
	if err := pipe.UpsertPipelineItems(ctx, items); err != nil {
		t.Fatalf("seed pipeline: %v", err)
	}

	uc := NewPipelineUsecase(pipe, cands, jobs, nil, nil)
	uc.now = func() time.Time { return pipelineNow }
	return uc, items
}

func TestPipelineUsecase_GetBoard(t *testing.T) {
	uc, items := seedPipelineUsecase(t)

	board, err := uc.GetBoard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if board.Total != len(items) {
		t.Fatalf("expected total %d, got %d", len(items), board.Total)
	}

	stages := domain.Stages()
	if len(board.Columns) != len(stages) {
		t.Fatalf("expected %d columns, got %d", len(stages), len(board.Columns))
	}
	for i, col := range board.Columns {
		if col.Stage != stages[i] {
			t.Fatalf("expected column order to follow board order, position %d got %s", i, col.Stage)
		}
		if col.Items == nil {
			t.Fatalf("expected empty columns to carry an empty slice, stage %s", col.Stage)
		}
	}

	if n := len(board.Columns[0].Items); n != 2 {
		t.Fatalf("expected 2 items in new, got %d", n)
	}
	if n := len(board.Columns[2].Items); n != 1 {
		t.Fatalf("expected 1 item in interview, got %d", n)
	}

	first := board.Columns[0].Items[0]
	if first.CandidateName != "Mira" || first.JobTitle != "Backend Engineer" {
		t.Fatalf("expected names resolved on board items, got %+v", first)
	}

	sum := 0
	for _, b := range board.Buckets {
		sum += b.Count
	}
	if sum != board.Total {
		t.Fatalf("expected bucket counts to sum to total %d, got %d", board.Total, sum)
	}
}

func TestPipelineUsecase_MoveStage(t *testing.T) {
	uc, items := seedPipelineUsecase(t)
	ctx := context.Background()

	moved, err := uc.MoveStage(ctx, items[0].ID, domain.StageContacted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if moved.Stage != domain.StageContacted {
		t.Fatalf("expected stage contacted, got %s", moved.Stage)
	}
	if !moved.UpdatedAt.Equal(pipelineNow) {
		t.Fatalf("expected updated_at %v, got %v", pipelineNow, moved.UpdatedAt)
	}

	// the move is visible on the next board read
	board, err := uc.GetBoard(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n := len(board.Columns[1].Items); n != 1 {
		t.Fatalf("expected 1 item in contacted after move, got %d", n)
	}
}

func TestPipelineUsecase_MoveStage_Errors(t *testing.T) {
	uc, items := seedPipelineUsecase(t)
	ctx := context.Background()

	if _, err := uc.MoveStage(ctx, uuid.Nil, domain.StageOffer); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.MoveStage(ctx, items[0].ID, domain.Stage("parked")); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got %v", err)
	}
	if _, err := uc.MoveStage(ctx, uuid.New(), domain.StageOffer); !errors.Is(err, ErrPipelineItemNotFound) {
		t.Fatalf("expected ErrPipelineItemNotFound, got %v", err)
	}
}
