package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"talent-crm/internal/domain/candidate"
	"talent-crm/internal/domain/job"
	"talent-crm/internal/repository"

	"github.com/google/uuid"
)

func seedMatchingRepos(t *testing.T) (*repository.MemoryCandidateRepository, *repository.MemoryJobRepository, uuid.UUID, [3]uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	cands := repository.NewMemoryCandidateRepository()
	jobs := repository.NewMemoryJobRepository()

	jobID := uuid.New()
	if err := jobs.UpsertJobs(ctx, []job.Job{{
		ID:       jobID,
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Berlin",
		Tags:     []string{"Go", "Redis"},
		Status:   job.StatusOpen,
	}}); err != nil {
		t.Fatalf("seed jobs: %v", err)
	}

	ids := [3]uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	if err := cands.UpsertCandidates(ctx, []candidate.Candidate{
		{ID: ids[0], Name: "Strong", Location: "berlin", Tags: []string{"go", "redis"}},
		{ID: ids[1], Name: "Partial", Location: "Munich", Tags: []string{"go"}},
		{ID: ids[2], Name: "Unrelated", Location: "", Tags: []string{"java"}},
	}); err != nil {
		t.Fatalf("seed candidates: %v", err)
	}

	return cands, jobs, jobID, ids
}

func TestMatchingUsecase_CandidatesForJob_RankedDeterministic(t *testing.T) {
	cands, jobs, jobID, ids := seedMatchingRepos(t)
	uc := NewMatchingUsecase(cands, jobs, nil, nil)

	items, err := uc.CandidatesForJob(context.Background(), jobID, MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(items))
	}

	gotScores := []int{items[0].Score, items[1].Score, items[2].Score}
	if !reflect.DeepEqual(gotScores, []int{70, 50, 40}) {
		t.Fatalf("expected scores [70 50 40], got %v", gotScores)
	}
	if items[0].CandidateID != ids[0] {
		t.Fatalf("expected strongest candidate first")
	}
	if !items[0].LocationMatch {
		t.Fatalf("expected location match for top candidate")
	}
	if !reflect.DeepEqual(items[0].SharedKeywords, []string{"go", "redis"}) {
		t.Fatalf("unexpected shared keywords: %v", items[0].SharedKeywords)
	}

	// same inputs, same output — scoring has a single deterministic path
	again, err := uc.CandidatesForJob(context.Background(), jobID, MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(items, again) {
		t.Fatalf("expected deterministic results")
	}
}

func TestMatchingUsecase_CandidatesForJob_MinScore(t *testing.T) {
	cands, jobs, jobID, ids := seedMatchingRepos(t)
	uc := NewMatchingUsecase(cands, jobs, nil, nil)

	items, err := uc.CandidatesForJob(context.Background(), jobID, MatchParams{MinScore: 60})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].CandidateID != ids[0] {
		t.Fatalf("expected only the strong candidate, got %v", items)
	}
}

func TestMatchingUsecase_CandidatesForJob_Errors(t *testing.T) {
	cands, jobs, _, _ := seedMatchingRepos(t)
	uc := NewMatchingUsecase(cands, jobs, nil, nil)

	if _, err := uc.CandidatesForJob(context.Background(), uuid.Nil, MatchParams{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CandidatesForJob(context.Background(), uuid.New(), MatchParams{}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMatchingUsecase_JobsForCandidate_SkipsClosedJobs(t *testing.T) {
	cands, jobs, openJobID, ids := seedMatchingRepos(t)
	uc := NewMatchingUsecase(cands, jobs, nil, nil)

	closedID := uuid.New()
	if err := jobs.UpsertJobs(context.Background(), []job.Job{{
		ID:       closedID,
		Title:    "Legacy Role",
		Location: "berlin",
		Tags:     []string{"go", "redis"},
		Status:   job.StatusClosed,
	}}); err != nil {
		t.Fatalf("seed closed job: %v", err)
	}

	items, err := uc.JobsForCandidate(context.Background(), ids[0], MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected only the open job, got %d", len(items))
	}
	if items[0].JobID != openJobID {
		t.Fatalf("expected open job id")
	}
	if items[0].Score != 70 {
		t.Fatalf("expected score 70, got %d", items[0].Score)
	}

	if _, err := uc.JobsForCandidate(context.Background(), uuid.New(), MatchParams{}); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}
