package usecase

import (
	"context"
	"log"
	"time"

	"talent-crm/internal/domain"
	"talent-crm/internal/reporting"
	"talent-crm/internal/repository"
	"talent-crm/internal/ws"

	"github.com/google/uuid"
)

type BoardItem struct {
	ItemID        uuid.UUID `json:"item_id"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	JobID         uuid.UUID `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Stage         string    `json:"stage"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BoardColumn struct {
	Stage string      `json:"stage"`
	Items []BoardItem `json:"items"`
}

type PipelineBoard struct {
	Total   int                `json:"total"`
	Columns []BoardColumn      `json:"columns"`
	Buckets []reporting.Bucket `json:"buckets"`
}

type PipelineUsecase interface {
	GetBoard(ctx context.Context) (PipelineBoard, error)
	MoveStage(ctx context.Context, itemID uuid.UUID, stage domain.Stage) (domain.PipelineItem, error)
}

type Pipeline struct {
	items      repository.PipelineRepository
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	cache      ReportCache
	log        *log.Logger
	now        func() time.Time
}

func NewPipelineUsecase(items repository.PipelineRepository, candidates repository.CandidateRepository, jobs repository.JobRepository, cache ReportCache, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		items:      items,
		candidates: candidates,
		jobs:       jobs,
		cache:      cache,
		log:        logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *Pipeline) GetBoard(ctx context.Context) (PipelineBoard, error) {
	items, err := u.items.ListPipelineItems(ctx)
	if err != nil {
		return PipelineBoard{}, ErrInternal
	}
	cands, err := u.candidates.ListCandidates(ctx)
	if err != nil {
		return PipelineBoard{}, ErrInternal
	}
	jobs, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return PipelineBoard{}, ErrInternal
	}

	names := make(map[uuid.UUID]string, len(cands))
	for _, c := range cands {
		names[c.ID] = c.Name
	}
	titles := make(map[uuid.UUID]string, len(jobs))
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}

	byStage := make(map[string][]BoardItem, len(items))
	for _, it := range items {
		bi := BoardItem{
			ItemID:        it.ID,
			CandidateID:   it.CandidateID,
			CandidateName: names[it.CandidateID],
			JobID:         it.JobID,
			JobTitle:      titles[it.JobID],
			Stage:         string(it.Stage),
			UpdatedAt:     it.UpdatedAt,
		}
		byStage[bi.Stage] = append(byStage[bi.Stage], bi)
	}

	board := PipelineBoard{
		Total:   len(items),
		Columns: make([]BoardColumn, 0, len(domain.Stages())),
		Buckets: reporting.AggregateByCategory(items, func(it domain.PipelineItem) string { return string(it.Stage) }, domain.Stages()),
	}
	for _, stage := range domain.Stages() {
		col := BoardColumn{Stage: stage, Items: byStage[stage]}
		if col.Items == nil {
			col.Items = make([]BoardItem, 0)
		}
		board.Columns = append(board.Columns, col)
	}

	return board, nil
}

// MoveStage updates the item, drops any cached dashboards and pushes a live
// refresh to connected boards.
func (u *Pipeline) MoveStage(ctx context.Context, itemID uuid.UUID, stage domain.Stage) (domain.PipelineItem, error) {
	if itemID == uuid.Nil {
		return domain.PipelineItem{}, ErrInvalidInput
	}
	if !stage.Valid() {
		return domain.PipelineItem{}, ErrInvalidStage
	}

	item, found, err := u.items.UpdateStage(ctx, itemID, stage, u.now())
	if err != nil {
		return domain.PipelineItem{}, ErrInternal
	}
	if !found {
		return domain.PipelineItem{}, ErrPipelineItemNotFound
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "dashboard:*"); err != nil {
			u.log.Printf("pipeline cache_invalidate status=error err=%v", err)
		}
	}

	ws.NotifyPipelineUpdated(item.ID, string(item.Stage))

	return item, nil
}
