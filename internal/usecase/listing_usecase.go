package usecase

import (
	"context"
	"strings"

	"talent-crm/internal/domain/candidate"
	"talent-crm/internal/domain/job"
	"talent-crm/internal/domain/matching"
	"talent-crm/internal/repository"
)

type ListParams struct {
	Query    string
	Location string
	Limit    int
	Offset   int
}

type DirectoryUsecase interface {
	ListCandidates(ctx context.Context, params ListParams) ([]candidate.Candidate, error)
	ListJobs(ctx context.Context, params ListParams) ([]job.Job, error)
}

type Directory struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
}

func NewDirectoryUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository) *Directory {
	return &Directory{candidates: candidates, jobs: jobs}
}

func (u *Directory) ListCandidates(ctx context.Context, params ListParams) ([]candidate.Candidate, error) {
	params, err := normalizeListParams(params)
	if err != nil {
		return nil, err
	}

	items, err := u.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	filtered := make([]candidate.Candidate, 0, len(items))
	for _, c := range items {
		if params.Location != "" && matching.Normalize(c.Location) != params.Location {
			continue
		}
		if params.Query != "" && !candidateMatchesQuery(c, params.Query) {
			continue
		}
		filtered = append(filtered, c)
	}

	return pageSlice(filtered, params.Limit, params.Offset), nil
}

func (u *Directory) ListJobs(ctx context.Context, params ListParams) ([]job.Job, error) {
	params, err := normalizeListParams(params)
	if err != nil {
		return nil, err
	}

	items, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	filtered := make([]job.Job, 0, len(items))
	for _, j := range items {
		if params.Location != "" && matching.Normalize(j.Location) != params.Location {
			continue
		}
		if params.Query != "" && !jobMatchesQuery(j, params.Query) {
			continue
		}
		filtered = append(filtered, j)
	}

	return pageSlice(filtered, params.Limit, params.Offset), nil
}

func normalizeListParams(params ListParams) (ListParams, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return ListParams{}, ErrInvalidInput
	}
	if params.Limit == 0 {
		params.Limit = 50
	}
	if params.Limit > 200 {
		params.Limit = 200
	}
	params.Query = matching.Normalize(params.Query)
	params.Location = matching.Normalize(params.Location)
	return params, nil
}

func candidateMatchesQuery(c candidate.Candidate, q string) bool {
	if strings.Contains(matching.Normalize(c.Name), q) {
		return true
	}
	for _, kw := range matching.CollectKeywords(matching.Entity{Tags: c.Tags, Skills: c.Skills}) {
		if strings.Contains(kw, q) {
			return true
		}
	}
	return false
}

func jobMatchesQuery(j job.Job, q string) bool {
	if strings.Contains(matching.Normalize(j.Title), q) {
		return true
	}
	if strings.Contains(matching.Normalize(j.Company), q) {
		return true
	}
	for _, kw := range matching.CollectKeywords(matching.Entity{Tags: j.Tags}) {
		if strings.Contains(kw, q) {
			return true
		}
	}
	return false
}

func pageSlice[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
