package usecase

import (
	"context"
	"log"
	"time"

	"talent-crm/internal/domain/candidate"
	"talent-crm/internal/domain/job"
	"talent-crm/internal/domain/matching"
	"talent-crm/internal/repository"

	"github.com/google/uuid"
)

const matchCacheTTL = 60 * time.Second

type MatchParams struct {
	Limit    int
	MinScore int
}

type CandidateMatchItem struct {
	CandidateID    uuid.UUID `json:"candidate_id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Score          int       `json:"score"`
	SharedKeywords []string  `json:"shared_keywords"`
	LocationMatch  bool      `json:"location_match"`
}

type JobMatchItem struct {
	JobID          uuid.UUID `json:"job_id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Score          int       `json:"score"`
	SharedKeywords []string  `json:"shared_keywords"`
	LocationMatch  bool      `json:"location_match"`
}

type MatchingUsecase interface {
	CandidatesForJob(ctx context.Context, jobID uuid.UUID, params MatchParams) ([]CandidateMatchItem, error)
	JobsForCandidate(ctx context.Context, candidateID uuid.UUID, params MatchParams) ([]JobMatchItem, error)
}

type Matching struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	cache      ReportCache
	log        *log.Logger
}

func NewMatchingUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository, cache ReportCache, logger *log.Logger) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{candidates: candidates, jobs: jobs, cache: cache, log: logger}
}

// CandidatesForJob scores every candidate against the job through the one
// deterministic scorer and returns them ranked, best first.
func (u *Matching) CandidatesForJob(ctx context.Context, jobID uuid.UUID, params MatchParams) ([]CandidateMatchItem, error) {
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	params = normalizeMatchParams(params)

	j, found, err := u.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	if !found {
		return nil, ErrJobNotFound
	}

	key := MatchesCacheKey("candidates_for_job", jobID, params.Limit, params.MinScore)
	if u.cache != nil {
		var cached []CandidateMatchItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	cands, err := u.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	jobEnt := jobEntity(j)
	items := make([]CandidateMatchItem, 0, len(cands))
	for _, c := range cands {
		res := matching.Score(candidateEntity(c), jobEnt)
		if res.Score < params.MinScore {
			continue
		}
		items = append(items, CandidateMatchItem{
			CandidateID:    c.ID,
			Name:           c.Name,
			Location:       c.Location,
			Score:          res.Score,
			SharedKeywords: res.SharedKeywords,
			LocationMatch:  res.LocationMatch,
		})
	}

	items = matching.RankByScore(items, func(it CandidateMatchItem) int { return it.Score })
	if len(items) > params.Limit {
		items = items[:params.Limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, matchCacheTTL); err != nil {
			u.log.Printf("matching cache_set status=error key=%s err=%v", key, err)
		}
	}

	return items, nil
}

// JobsForCandidate is the reverse direction: all open jobs scored against
// one candidate profile.
func (u *Matching) JobsForCandidate(ctx context.Context, candidateID uuid.UUID, params MatchParams) ([]JobMatchItem, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	params = normalizeMatchParams(params)

	c, found, err := u.candidates.FindCandidateByID(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	if !found {
		return nil, ErrCandidateNotFound
	}

	key := MatchesCacheKey("jobs_for_candidate", candidateID, params.Limit, params.MinScore)
	if u.cache != nil {
		var cached []JobMatchItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	candEnt := candidateEntity(c)
	items := make([]JobMatchItem, 0, len(jobs))
	for _, j := range jobs {
		if j.Status != job.StatusOpen {
			continue
		}
		res := matching.Score(candEnt, jobEntity(j))
		if res.Score < params.MinScore {
			continue
		}
		items = append(items, JobMatchItem{
			JobID:          j.ID,
			Title:          j.Title,
			Company:        j.Company,
			Location:       j.Location,
			Score:          res.Score,
			SharedKeywords: res.SharedKeywords,
			LocationMatch:  res.LocationMatch,
		})
	}

	items = matching.RankByScore(items, func(it JobMatchItem) int { return it.Score })
	if len(items) > params.Limit {
		items = items[:params.Limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, matchCacheTTL); err != nil {
			u.log.Printf("matching cache_set status=error key=%s err=%v", key, err)
		}
	}

	return items, nil
}

func normalizeMatchParams(params MatchParams) MatchParams {
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > 50 {
		params.Limit = 50
	}
	if params.MinScore < 0 {
		params.MinScore = 0
	}
	return params
}

func candidateEntity(c candidate.Candidate) matching.Entity {
	return matching.Entity{Location: c.Location, Tags: c.Tags, Skills: c.Skills}
}

func jobEntity(j job.Job) matching.Entity {
	return matching.Entity{Location: j.Location, Tags: j.Tags}
}
