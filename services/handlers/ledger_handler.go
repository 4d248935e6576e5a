package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/shared"
)

type LedgerHandler struct {
	ledgerSvc LedgerServiceInterface
}

func NewLedgerHandler(ledgerSvc LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{
		ledgerSvc: ledgerSvc,
	}
}

// @Summary Toggle Completion
// @Description Flip an activity's completion state for a class
// @Tags progress
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param toggleRequest body dto.ToggleCompletionRequest true "Activity to toggle"
// @Success 200 {object} shared.Response{data=dto.ToggleCompletionResponse}
// @Router /api/v1/classes/{classId}/completions/toggle [post]
func (h *LedgerHandler) ToggleCompletion(c *fiber.Ctx) error {
	var req dto.ToggleCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	result, err := h.ledgerSvc.Toggle(c.Context(), requestSubject(c), c.Params("classId"), req.ActivityID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Get Completions
// @Description Get the completed activity ids for a class
// @Tags progress
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {object} shared.Response{data=dto.CompletionSetResponse}
// @Router /api/v1/classes/{classId}/completions [get]
func (h *LedgerHandler) GetCompletions(c *fiber.Ctx) error {
	result, err := h.ledgerSvc.Completions(c.Context(), requestSubject(c), c.Params("classId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Recent Completions
// @Description Get a class's recently completed activities, oldest first
// @Tags progress
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {object} shared.Response{data=dto.RecentCompletionsResponse}
// @Router /api/v1/classes/{classId}/completions/recent [get]
func (h *LedgerHandler) GetRecentCompletions(c *fiber.Ctx) error {
	result, err := h.ledgerSvc.Recent(c.Context(), requestSubject(c), c.Params("classId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Reset Completions
// @Description Wipe the completion records of the given classes
// @Tags progress
// @Accept json
// @Produce json
// @Param resetRequest body dto.ResetCompletionsRequest true "Classes to reset"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/completions/reset [post]
func (h *LedgerHandler) ResetCompletions(c *fiber.Ctx) error {
	var req dto.ResetCompletionsRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.ledgerSvc.ResetAll(c.Context(), requestSubject(c), req.ClassIDs); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Progress reset", "ok")
}
