package sampledata

import (
	"context"
	"time"

	"talent-crm/internal/domain/job"
)

type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Run(ctx context.Context, repos Repos) error {
	now := time.Now().UTC()

	items := []job.Job{
		{
			ID:        jobBackendBerlin,
			Title:     "Backend Engineer",
			Company:   "Nordwind Labs",
			Location:  "Berlin",
			Tags:      []string{"Go", "PostgreSQL", "Redis", "Docker"},
			Status:    job.StatusOpen,
			CreatedAt: now.AddDate(0, 0, -20),
		},
		{
			ID:        jobFrontendHamburg,
			Title:     "Frontend Developer",
			Company:   "Hafen Digital",
			Location:  "Hamburg",
			Tags:      []string{"React", "TypeScript", "Node"},
			Status:    job.StatusOpen,
			CreatedAt: now.AddDate(0, 0, -14),
		},
		{
			ID:        jobDataMunich,
			Title:     "Data Engineer",
			Company:   "Isar Analytics",
			Location:  "Munich",
			Tags:      []string{"Python", "SQL", "Airflow", "Kafka"},
			Status:    job.StatusOpen,
			CreatedAt: now.AddDate(0, 0, -8),
		},
		{
			ID:        jobDevOpsRemote,
			Title:     "Platform Engineer",
			Company:   "Cloudkante",
			Location:  "Remote",
			Tags:      []string{"Kubernetes", "Terraform", "AWS", "Go"},
			Status:    job.StatusClosed,
			CreatedAt: now.AddDate(0, 0, -45),
		},
	}

	return repos.Jobs.UpsertJobs(ctx, items)
}
