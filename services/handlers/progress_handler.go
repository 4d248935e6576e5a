package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kids-in-business/kib_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

// @Summary Get Progress
// @Description Get per-category statistics, achievements and the filtered activity list for a class
// @Tags progress
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param status query string false "Status filter" Enums(all, completed, incomplete)
// @Param owner query string false "Ownership filter" Enums(all, mine)
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/classes/{classId}/progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	status := c.Query("status", shared.FilterAll)
	owner := c.Query("owner", shared.FilterAll)

	result, err := h.progressSvc.GetProgress(c.Context(), requestSubject(c), c.Params("classId"), requestUserID(c), status, owner)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
