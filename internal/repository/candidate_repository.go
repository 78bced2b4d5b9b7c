package repository

import (
	"context"
	"sync"

	"talent-crm/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	ListCandidates(ctx context.Context) ([]candidate.Candidate, error)
	FindCandidateByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, bool, error)
	UpsertCandidates(ctx context.Context, items []candidate.Candidate) error
}

// MemoryCandidateRepository holds the demo dataset. All reads hand out
// copies so callers can never mutate the stored records.
type MemoryCandidateRepository struct {
	mu    sync.RWMutex
	items []candidate.Candidate
}

func NewMemoryCandidateRepository() *MemoryCandidateRepository {
	return &MemoryCandidateRepository{items: make([]candidate.Candidate, 0)}
}

func (r *MemoryCandidateRepository) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]candidate.Candidate, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryCandidateRepository) FindCandidateByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return candidate.Candidate{}, false, nil
}

func (r *MemoryCandidateRepository) UpsertCandidates(ctx context.Context, items []candidate.Candidate) error {
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
