package repository

import (
	"context"
	"sync"
	"time"

	"talent-crm/internal/domain"

	"github.com/google/uuid"
)

type PipelineRepository interface {
	ListPipelineItems(ctx context.Context) ([]domain.PipelineItem, error)
	UpdateStage(ctx context.Context, id uuid.UUID, stage domain.Stage, at time.Time) (domain.PipelineItem, bool, error)
	UpsertPipelineItems(ctx context.Context, items []domain.PipelineItem) error
}

type MemoryPipelineRepository struct {
	mu    sync.RWMutex
	items []domain.PipelineItem
}

func NewMemoryPipelineRepository() *MemoryPipelineRepository {
	return &MemoryPipelineRepository{items: make([]domain.PipelineItem, 0)}
}

func (r *MemoryPipelineRepository) ListPipelineItems(ctx context.Context) ([]domain.PipelineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PipelineItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryPipelineRepository) UpdateStage(ctx context.Context, id uuid.UUID, stage domain.Stage, at time.Time) (domain.PipelineItem, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Stage = stage
			r.items[i].UpdatedAt = at
			return r.items[i], true, nil
		}
	}
	return domain.PipelineItem{}, false, nil
}

func (r *MemoryPipelineRepository) UpsertPipelineItems(ctx context.Context, items []domain.PipelineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range items {
		if it.ID == uuid.Nil {
			continue
		}
		replaced := false
		for i := range r.items {
			if r.items[i].ID == it.ID {
				r.items[i] = it
				replaced = true
				break
			}
		}
		if !replaced {
			r.items = append(r.items, it)
		}
	}
	return nil
}
