package repository

import (
	"context"
	"sync"

	"talent-crm/internal/domain"

	"github.com/google/uuid"
)

type ActivityRepository interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	InsertActivity(ctx context.Context, item domain.Activity) error
	UpsertActivities(ctx context.Context, items []domain.Activity) error
}

type MemoryActivityRepository struct {
	mu    sync.RWMutex
	items []domain.Activity
}

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{items: make([]domain.Activity, 0)}
}

func (r *MemoryActivityRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Activity, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryActivityRepository) InsertActivity(ctx context.Context, item domain.Activity) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *MemoryActivityRepository) UpsertActivities(ctx context.Context, items []domain.Activity) error {
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
