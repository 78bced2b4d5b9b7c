package sampledata

import (
	"context"
	"time"

	"talent-crm/internal/domain"

	"github.com/google/uuid"
)

type PipelineSeeder struct{}

func (PipelineSeeder) Name() string { return "pipeline" }

func (PipelineSeeder) Run(ctx context.Context, repos Repos) error {
	now := time.Now().UTC()

	item := func(suffix string, candidateID, jobID uuid.UUID, stage domain.Stage, daysAgo int) domain.PipelineItem {
		return domain.PipelineItem{
			ID:          uuid.MustParse("b4d5e6f0-1a2b-4c3d-8e9f-cc01020304" + suffix),
			CandidateID: candidateID,
			JobID:       jobID,
			Stage:       stage,
			CreatedAt:   now.AddDate(0, 0, -daysAgo),
			UpdatedAt:   now.AddDate(0, 0, -daysAgo/2),
		}
	}

	items := []domain.PipelineItem{
		item("01", candidateMira, jobFrontendHamburg, domain.StageInterview, 10),
		item("02", candidateJonas, jobBackendBerlin, domain.StageOffer, 15),
		item("03", candidateLena, jobDataMunich, domain.StageContacted, 6),
		item("04", candidateOmar, jobDataMunich, domain.StageNew, 2),
		item("05", candidateSofia, jobBackendBerlin, domain.StageInterview, 4),
		item("06", candidateSofia, jobDevOpsRemote, domain.StageHired, 30),
		item("07", candidateTariq, jobFrontendHamburg, domain.StageNew, 1),
		item("08", candidateMira, jobBackendBerlin, domain.StageRejected, 22),
	}

	return repos.Pipeline.UpsertPipelineItems(ctx, items)
}
