package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-crm/internal/domain/candidate"
	"talent-crm/internal/domain/job"
	"talent-crm/internal/repository"

	"github.com/google/uuid"
)

func seedDirectoryUsecase(t *testing.T) *Directory {
	t.Helper()
	ctx := context.Background()

	cands := repository.NewMemoryCandidateRepository()
	if err := cands.UpsertCandidates(ctx, []candidate.Candidate{
		{ID: uuid.New(), Name: "Mira Schulz", Location: "Berlin", Skills: []string{"Go", "Postgres"}},
		{ID: uuid.New(), Name: "Jonas Weber", Location: "Munich", Tags: []string{"frontend"}, Skills: []string{"React"}},
		{ID: uuid.New(), Name: "Ana Costa", Location: "berlin", Skills: []string{"python"}},
	}); err != nil {
		t.Fatalf("seed candidates: %v", err)
	}

	jobs := repository.NewMemoryJobRepository()
	if err := jobs.UpsertJobs(ctx, []job.Job{
		{ID: uuid.New(), Title: "Backend Engineer", Company: "Acme", Location: "Berlin", Tags: []string{"go"}},
		{ID: uuid.New(), Title: "Frontend Engineer", Company: "Initech", Location: "Remote", Tags: []string{"react"}},
	}); err != nil {
		t.Fatalf("seed jobs: %v", err)
	}

	return NewDirectoryUsecase(cands, jobs)
}

func TestDirectoryUsecase_ListCandidates_Filters(t *testing.T) {
	uc := seedDirectoryUsecase(t)
	ctx := context.Background()

	// location filter is case-insensitive
	got, err := uc.ListCandidates(ctx, ListParams{Location: "BERLIN"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 berlin candidates, got %d", len(got))
	}

	// query matches skills as substrings
	got, err = uc.ListCandidates(ctx, ListParams{Query: "postgre"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Mira Schulz" {
		t.Fatalf("expected the postgres candidate, got %+v", got)
	}

	// query matches names too
	got, err = uc.ListCandidates(ctx, ListParams{Query: "jonas"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Jonas Weber" {
		t.Fatalf("expected the name match, got %+v", got)
	}
}

func TestDirectoryUsecase_ListCandidates_Paging(t *testing.T) {
	uc := seedDirectoryUsecase(t)
	ctx := context.Background()

	page, err := uc.ListCandidates(ctx, ListParams{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}

	rest, err := uc.ListCandidates(ctx, ListParams{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("expected 1 remaining candidate, got %d", len(rest))
	}

	empty, err := uc.ListCandidates(ctx, ListParams{Offset: 99})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(empty))
	}

	if _, err := uc.ListCandidates(ctx, ListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative limit, got %v", err)
	}
}

func TestDirectoryUsecase_ListJobs_QueryAndLocation(t *testing.T) {
	uc := seedDirectoryUsecase(t)
	ctx := context.Background()

	got, err := uc.ListJobs(ctx, ListParams{Query: "acme"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Backend Engineer" {
		t.Fatalf("expected the company match, got %+v", got)
	}

	got, err = uc.ListJobs(ctx, ListParams{Query: "react", Location: "remote"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Frontend Engineer" {
		t.Fatalf("expected the tag+location match, got %+v", got)
	}

	got, err = uc.ListJobs(ctx, ListParams{Query: "react", Location: "berlin"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no match when filters disagree, got %+v", got)
	}
}
