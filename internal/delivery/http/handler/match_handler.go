package handler

import (
	"errors"

	"talent-crm/internal/delivery/http/dto"
	"talent-crm/internal/delivery/http/middleware"
	"talent-crm/internal/pkg/response"
	"talent-crm/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs/:job_id/matches", h.HandleCandidatesForJob)
	r.Get("/candidates/:candidate_id/matches", h.HandleJobsForCandidate)
}

func (h *MatchHandler) HandleCandidatesForJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params, err := parseMatchParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.CandidatesForJob(c.Context(), jobID, params)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := make([]dto.CandidateMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CandidateMatchResponse{
			CandidateID:    it.CandidateID,
			Name:           it.Name,
			Location:       it.Location,
			MatchScore:     it.Score,
			SharedKeywords: it.SharedKeywords,
			LocationMatch:  it.LocationMatch,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) HandleJobsForCandidate(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params, err := parseMatchParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.JobsForCandidate(c.Context(), candidateID, params)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := make([]dto.JobMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobMatchResponse{
			JobID:          it.JobID,
			Title:          it.Title,
			Company:        it.Company,
			Location:       it.Location,
			MatchScore:     it.Score,
			SharedKeywords: it.SharedKeywords,
			LocationMatch:  it.LocationMatch,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseMatchParams(c fiber.Ctx) (usecase.MatchParams, error) {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return usecase.MatchParams{}, err
	}
	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return usecase.MatchParams{}, err
	}
	return usecase.MatchParams{Limit: limit, MinScore: minScore}, nil
}

func mapMatchingUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
