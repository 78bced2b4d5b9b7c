package sampledata

import (
	"context"

	"talent-crm/internal/repository"
)

// Repos is the set of in-memory stores the demo dataset loads into.
type Repos struct {
	Candidates repository.CandidateRepository
	Jobs       repository.JobRepository
	Pipeline   repository.PipelineRepository
	Tasks      repository.TaskRepository
	Activities repository.ActivityRepository
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, repos Repos) error
}

func Defaults() []Seeder {
	return []Seeder{
		CandidateSeeder{},
		JobSeeder{},
		PipelineSeeder{},
		TaskSeeder{},
		ActivitySeeder{},
	}
}
