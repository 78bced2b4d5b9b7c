package handler

import (
	"errors"

	"talent-crm/internal/delivery/http/dto"
	"talent-crm/internal/delivery/http/middleware"
	"talent-crm/internal/pkg/response"
	"talent-crm/internal/reporting"
	"talent-crm/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TaskHandler struct {
	uc usecase.TaskUsecase
}

func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func (h *TaskHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/tasks", h.HandleListTasks)
}

func (h *TaskHandler) HandleListTasks(c fiber.Ctx) error {
	window, err := reporting.ParseWindow(c.Query("due"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListByDueWindow(c.Context(), window)
	if err != nil {
		return mapTaskUsecaseError(err)
	}

	out := make([]dto.TaskResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TaskResponse{
			TaskID:      it.TaskID,
			Title:       it.Title,
			Status:      it.Status,
			CandidateID: it.CandidateID,
			DueDate:     formatTime(it.DueDate),
			Overdue:     it.Overdue,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapTaskUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
