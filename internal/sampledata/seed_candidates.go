package sampledata

import (
	"context"
	"time"

	"talent-crm/internal/domain/candidate"
)

type CandidateSeeder struct{}

func (CandidateSeeder) Name() string { return "candidates" }

func (CandidateSeeder) Run(ctx context.Context, repos Repos) error {
	now := time.Now().UTC()

	items := []candidate.Candidate{
		{
			ID:        candidateMira,
			Name:      "Mira Keller",
			Email:     "mira.keller@example.com",
			Location:  "Berlin",
			Tags:      []string{"React", "TypeScript"},
			Skills:    []string{"Node", "GraphQL"},
			CreatedAt: now.AddDate(0, 0, -40),
			UpdatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID:        candidateJonas,
			Name:      "Jonas Brandt",
			Email:     "jonas.brandt@example.com",
			Location:  "Hamburg",
			Tags:      []string{"Go", "Kubernetes"},
			Skills:    []string{"PostgreSQL", "Redis", "Docker"},
			CreatedAt: now.AddDate(0, 0, -25),
			UpdatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID:        candidateLena,
			Name:      "Lena Hoffmann",
			Email:     "lena.hoffmann@example.com",
			Location:  "Berlin",
			Tags:      []string{"Python", "Pandas"},
			Skills:    []string{"SQL", "Airflow"},
			CreatedAt: now.AddDate(0, 0, -18),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:        candidateOmar,
			Name:      "Omar Haddad",
			Email:     "omar.haddad@example.com",
			Location:  "Munich",
			Tags:      []string{"Java", "Spring"},
			Skills:    []string{"Kafka", "PostgreSQL"},
			CreatedAt: now.AddDate(0, 0, -12),
			UpdatedAt: now.AddDate(0, 0, -5),
		},
		{
			ID:        candidateSofia,
			Name:      "Sofia Martins",
			Email:     "sofia.martins@example.com",
			Location:  "Remote",
			Tags:      []string{"Terraform", "AWS"},
			Skills:    []string{"Go", "Docker", "Kubernetes"},
			CreatedAt: now.AddDate(0, 0, -6),
			UpdatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID:        candidateTariq,
			Name:      "Tariq Aziz",
			Email:     "tariq.aziz@example.com",
			Location:  "Berlin",
			Tags:      []string{"Vue", "JavaScript"},
			Skills:    []string{"CSS", "Node"},
			CreatedAt: now.AddDate(0, 0, -2),
			UpdatedAt: now,
		},
	}

	return repos.Candidates.UpsertCandidates(ctx, items)
}
