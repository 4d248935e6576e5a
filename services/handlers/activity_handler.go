package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/shared"
)

type ActivityHandler struct {
	catalogSvc CatalogServiceInterface
	mediaSvc   MediaServiceInterface
}

func NewActivityHandler(catalogSvc CatalogServiceInterface, mediaSvc MediaServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		catalogSvc: catalogSvc,
		mediaSvc:   mediaSvc,
	}
}

// @Summary List Activities
// @Description Get the full activity catalog in creation order
// @Tags activities
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ActivityCollectionResponse}
// @Router /api/v1/activities [get]
func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	activities, err := h.catalogSvc.LoadActivities()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", activities)
}

// @Summary Get Activity
// @Description Get a single activity by id
// @Tags activities
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} shared.Response{data=model.Activity}
// @Router /api/v1/activities/{activityId} [get]
func (h *ActivityHandler) GetActivity(c *fiber.Ctx) error {
	activity, err := h.catalogSvc.GetActivity(c.Params("activityId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", activity)
}

// @Summary Create Activity
// @Description Create a blank activity in the given category
// @Tags activities
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateActivityRequest true "Activity category"
// @Success 201 {object} shared.Response{data=model.Activity}
// @Security BearerAuth
// @Router /api/v1/activities [post]
func (h *ActivityHandler) CreateActivity(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	activity, err := h.catalogSvc.CreateActivity(requestUserID(c), req.Category)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Activity created", activity)
}

// @Summary Update Activity
// @Description Patch an activity's editable fields. Only the creator may edit.
// @Tags activities
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param updateRequest body dto.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=model.Activity}
// @Security BearerAuth
// @Router /api/v1/activities/{activityId} [put]
func (h *ActivityHandler) UpdateActivity(c *fiber.Ctx) error {
	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	activity, err := h.catalogSvc.UpdateActivity(requestUserID(c), c.Params("activityId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Activity updated", activity)
}

// @Summary Delete Activity
// @Description Delete an activity and prune it from every completion record
// @Tags activities
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} shared.Response{data=string}
// @Security BearerAuth
// @Router /api/v1/activities/{activityId} [delete]
func (h *ActivityHandler) DeleteActivity(c *fiber.Ctx) error {
	activityID := c.Params("activityId")
	if err := h.catalogSvc.DeleteActivity(c.Context(), requestUserID(c), activityID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Activity deleted", activityID)
}

// @Summary Upload Activity Badge
// @Description Upload badge art for an activity. Only the creator may upload.
// @Tags activities
// @Accept multipart/form-data
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param badge formData file true "Badge image (PNG, JPG, SVG, WEBP)"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Security BearerAuth
// @Router /api/v1/activities/{activityId}/badge [post]
func (h *ActivityHandler) UploadBadge(c *fiber.Ctx) error {
	file, err := c.FormFile("badge")
	if err != nil {
		return shared.NewBadRequestError(err, "Badge file is required")
	}

	result, err := h.mediaSvc.UploadActivityBadge(requestUserID(c), c.Params("activityId"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Badge uploaded", result)
}
