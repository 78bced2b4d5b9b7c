package handler

import (
	"errors"
	"strconv"
	"time"

	"talent-crm/internal/delivery/http/dto"
	"talent-crm/internal/delivery/http/middleware"
	"talent-crm/internal/pkg/response"
	"talent-crm/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DirectoryHandler struct {
	uc usecase.DirectoryUsecase
}

func NewDirectoryHandler(uc usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

func (h *DirectoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates", h.HandleListCandidates)
	r.Get("/jobs", h.HandleListJobs)
}

func (h *DirectoryHandler) HandleListCandidates(c fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListCandidates(c.Context(), params)
	if err != nil {
		return mapDirectoryUsecaseError(err)
	}

	out := make([]dto.CandidateResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CandidateResponse{
			CandidateID: it.ID,
			Name:        it.Name,
			Email:       it.Email,
			Location:    it.Location,
			Tags:        it.Tags,
			Skills:      it.Skills,
			CreatedAt:   formatTime(it.CreatedAt),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *DirectoryHandler) HandleListJobs(c fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListJobs(c.Context(), params)
	if err != nil {
		return mapDirectoryUsecaseError(err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobResponse{
			JobID:     it.ID,
			Title:     it.Title,
			Company:   it.Company,
			Location:  it.Location,
			Tags:      it.Tags,
			Status:    it.Status,
			CreatedAt: formatTime(it.CreatedAt),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapDirectoryUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseListParams(c fiber.Ctx) (usecase.ListParams, error) {
	limit, err := parseQueryIntStrict(c, "limit", 50)
	if err != nil {
		return usecase.ListParams{}, err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return usecase.ListParams{}, err
	}
	return usecase.ListParams{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
