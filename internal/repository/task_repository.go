package repository

import (
	"context"
	"sync"

	"talent-crm/internal/domain"

	"github.com/google/uuid"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpsertTasks(ctx context.Context, items []domain.Task) error
}

type MemoryTaskRepository struct {
	mu    sync.RWMutex
	items []domain.Task
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{items: make([]domain.Task, 0)}
}

func (r *MemoryTaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryTaskRepository) UpsertTasks(ctx context.Context, items []domain.Task) error {
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
