package repository

import (
	"context"
	"sync"

	"talent-crm/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	ListJobs(ctx context.Context) ([]job.Job, error)
	FindJobByID(ctx context.Context, id uuid.UUID) (job.Job, bool, error)
	UpsertJobs(ctx context.Context, items []job.Job) error
}

type MemoryJobRepository struct {
	mu    sync.RWMutex
	items []job.Job
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{items: make([]job.Job, 0)}
}

func (r *MemoryJobRepository) ListJobs(ctx context.Context) ([]job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]job.Job, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryJobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (job.Job, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return job.Job{}, false, nil
}

func (r *MemoryJobRepository) UpsertJobs(ctx context.Context, items []job.Job) error {
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
