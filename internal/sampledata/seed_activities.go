package sampledata

import (
	"context"
	"time"

	"talent-crm/internal/domain"

	"github.com/google/uuid"
)

type ActivitySeeder struct{}

func (ActivitySeeder) Name() string { return "activities" }

func (ActivitySeeder) Run(ctx context.Context, repos Repos) error {
	now := time.Now().UTC()

	activity := func(suffix string, typ domain.ActivityType, subject string, candidateID uuid.UUID, daysAgo int) domain.Activity {
		return domain.Activity{
			ID:          uuid.MustParse("e7a8b9c0-2d3e-4f5a-9b0c-ee01020304" + suffix),
			Type:        typ,
			Subject:     subject,
			CandidateID: candidateID,
			CreatedAt:   now.AddDate(0, 0, -daysAgo),
		}
	}

	items := []domain.Activity{
		activity("01", domain.ActivityCall, "Screening call", candidateMira, 9),
		activity("02", domain.ActivityEmail, "Sent role description", candidateJonas, 8),
		activity("03", domain.ActivityMeeting, "Onsite interview", candidateMira, 5),
		activity("04", domain.ActivityNote, "Strong pipeline fit, fast follow-up", candidateSofia, 4),
		activity("05", domain.ActivityEmail, "Offer draft shared internally", candidateJonas, 2),
		activity("06", domain.ActivityCall, "Intro call", candidateOmar, 1),
		activity("07", domain.ActivityNote, "Waiting on portfolio link", candidateTariq, 0),
		activity("08", domain.ActivityMeeting, "Hiring manager sync", candidateLena, 0),
	}

	return repos.Activities.UpsertActivities(ctx, items)
}
