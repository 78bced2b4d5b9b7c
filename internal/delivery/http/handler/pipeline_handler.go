package handler

import (
	"errors"

	"talent-crm/internal/delivery/http/dto"
	"talent-crm/internal/delivery/http/middleware"
	"talent-crm/internal/domain"
	"talent-crm/internal/pkg/response"
	"talent-crm/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PipelineHandler struct {
	uc usecase.PipelineUsecase
}

func NewPipelineHandler(uc usecase.PipelineUsecase) *PipelineHandler {
	return &PipelineHandler{uc: uc}
}

func (h *PipelineHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/pipeline")
	grp.Get("/board", h.HandleGetBoard)
	grp.Patch("/:item_id/stage", h.HandleMoveStage)
}

func (h *PipelineHandler) HandleGetBoard(c fiber.Ctx) error {
	board, err := h.uc.GetBoard(c.Context())
	if err != nil {
		return mapPipelineUsecaseError(err)
	}

	out := dto.BoardResponse{
		Total:   board.Total,
		Columns: make([]dto.BoardColumnResponse, 0, len(board.Columns)),
		Buckets: board.Buckets,
	}
	for _, col := range board.Columns {
		items := make([]dto.BoardItemResponse, 0, len(col.Items))
		for _, it := range col.Items {
			items = append(items, dto.BoardItemResponse{
				ItemID:        it.ItemID,
				CandidateID:   it.CandidateID,
				CandidateName: it.CandidateName,
				JobID:         it.JobID,
				JobTitle:      it.JobTitle,
				Stage:         it.Stage,
				UpdatedAt:     formatTime(it.UpdatedAt),
			})
		}
		out.Columns = append(out.Columns, dto.BoardColumnResponse{Stage: col.Stage, Items: items})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *PipelineHandler) HandleMoveStage(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.MoveStageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.MoveStage(c.Context(), itemID, domain.Stage(req.Stage))
	if err != nil {
		return mapPipelineUsecaseError(err)
	}

	out := dto.PipelineItemResponse{
		ItemID:      item.ID,
		CandidateID: item.CandidateID,
		JobID:       item.JobID,
		Stage:       string(item.Stage),
		UpdatedAt:   formatTime(item.UpdatedAt),
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapPipelineUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPipelineItemNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Pipeline item not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidStage):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid pipeline stage", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
