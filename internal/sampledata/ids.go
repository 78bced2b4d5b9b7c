package sampledata

import "github.com/google/uuid"

// Fixed IDs so pipeline items, tasks and activities can reference the same
// candidates and jobs across seeders.
var (
	candidateMira  = uuid.MustParse("7a1f4c90-4f2a-4b1e-9a6d-1b2c3d4e5f01")
	candidateJonas = uuid.MustParse("7a1f4c90-4f2a-4b1e-9a6d-1b2c3d4e5f02")
	candidateLena  = uuid.MustParse("7a1f4c90-4f2a-4b1e-9a6d-1b2c3d4e5f03")
	candidateOmar  = uuid.MustParse("7a1f4c90-4f2a-4b1e-9a6d-1b2c3d4e5f04")
	candidateSofia = uuid.MustParse("7a1f4c90-4f2a-4b1e-9a6d-1b2c3d4e5f05")
	candidateTariq = uuid.MustParse("7a1f4c90-4f2a-4b1e-9a6d-1b2c3d4e5f06")

	jobBackendBerlin   = uuid.MustParse("9c8e2d10-6b3f-4a7c-8e1d-aa0102030401")
	jobFrontendHamburg = uuid.MustParse("9c8e2d10-6b3f-4a7c-8e1d-aa0102030402")
	jobDataMunich      = uuid.MustParse("9c8e2d10-6b3f-4a7c-8e1d-aa0102030403")
	jobDevOpsRemote    = uuid.MustParse("9c8e2d10-6b3f-4a7c-8e1d-aa0102030404")
)
