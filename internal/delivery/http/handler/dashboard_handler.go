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

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/dashboard", h.HandleGetDashboard)
}

func (h *DashboardHandler) HandleGetDashboard(c fiber.Ctx) error {
	window, err := reporting.ParseWindow(c.Query("window"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	data, err := h.uc.GetDashboard(c.Context(), window)
	if err != nil {
		return mapDashboardUsecaseError(err)
	}

	out := dto.DashboardResponse{
		Window:              string(data.Window),
		OpenTasks:           data.OpenTasks,
		OverdueTasks:        data.OverdueTasks,
		InInterview:         data.InInterview,
		Hired:               data.Hired,
		TotalActivities:     data.TotalActivities,
		StageBuckets:        data.StageBuckets,
		TaskStatusBuckets:   data.TaskStatusBuckets,
		ActivityTypeBuckets: data.ActivityTypeBuckets,
		RecentActivities:    make([]dto.RecentActivityResponse, 0, len(data.RecentActivities)),
		GeneratedAt:         formatTime(data.GeneratedAt),
	}
	for _, a := range data.RecentActivities {
		out.RecentActivities = append(out.RecentActivities, dto.RecentActivityResponse{
			ActivityID: a.ActivityID.String(),
			Type:       a.Type,
			Subject:    a.Subject,
			CreatedAt:  formatTime(a.CreatedAt),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapDashboardUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
