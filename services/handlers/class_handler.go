package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/shared"
)

type ClassHandler struct {
	classSvc ClassServiceInterface
}

func NewClassHandler(classSvc ClassServiceInterface) *ClassHandler {
	return &ClassHandler{
		classSvc: classSvc,
	}
}

// @Summary List Classes
// @Description List the caller's classes, or the default classes when anonymous
// @Tags classes
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ClassCollectionResponse}
// @Router /api/v1/classes [get]
func (h *ClassHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.classSvc.ListClasses(c.Context(), requestUserID(c), requestSubject(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", classes)
}

// @Summary Create Class
// @Description Create a new class for the authenticated teacher
// @Tags classes
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateClassRequest true "Class details"
// @Success 201 {object} shared.Response{data=dto.ClassResponse}
// @Security BearerAuth
// @Router /api/v1/classes [post]
func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	class, err := h.classSvc.CreateClass(requestUserID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Class created", class)
}

// @Summary Rename Class
// @Description Rename a class. Anonymous callers can rename the default classes.
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Param renameRequest body dto.RenameClassRequest true "New name"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/classes/{classId}/name [put]
func (h *ClassHandler) RenameClass(c *fiber.Ctx) error {
	var req dto.RenameClassRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	classID := c.Params("classId")
	if err := h.classSvc.RenameClass(c.Context(), requestUserID(c), requestSubject(c), classID, req.Name); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Class renamed", classID)
}

// @Summary Delete Class
// @Description Delete a class and its completion records
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {object} shared.Response{data=string}
// @Security BearerAuth
// @Router /api/v1/classes/{classId} [delete]
func (h *ClassHandler) DeleteClass(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if err := h.classSvc.DeleteClass(c.Context(), requestUserID(c), requestSubject(c), classID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Class deleted", classID)
}

// @Summary Get Current Class
// @Description Get the caller's currently selected class
// @Tags classes
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.CurrentClassResponse}
// @Router /api/v1/classes/current [get]
func (h *ClassHandler) GetCurrentClass(c *fiber.Ctx) error {
	classID, err := h.classSvc.CurrentClass(c.Context(), requestSubject(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.CurrentClassResponse{ClassID: classID})
}

// @Summary Set Current Class
// @Description Select the caller's current class
// @Tags classes
// @Accept json
// @Produce json
// @Param selectRequest body dto.SetCurrentClassRequest true "Class selection"
// @Success 200 {object} shared.Response{data=dto.CurrentClassResponse}
// @Router /api/v1/classes/current [put]
func (h *ClassHandler) SetCurrentClass(c *fiber.Ctx) error {
	var req dto.SetCurrentClassRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	if err := h.classSvc.SetCurrentClass(c.Context(), requestSubject(c), req.ClassID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Current class updated", dto.CurrentClassResponse{ClassID: req.ClassID})
}
