package usecase

import "errors"

var (
	ErrInternal             = errors.New("Internal error")
	ErrInvalidInput         = errors.New("Invalid input")
	ErrJobNotFound          = errors.New("Job not found")
	ErrCandidateNotFound    = errors.New("Candidate not found")
	ErrPipelineItemNotFound = errors.New("Pipeline item not found")
	ErrInvalidStage         = errors.New("Invalid pipeline stage")
)
