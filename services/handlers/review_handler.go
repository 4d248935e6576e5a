package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/shared"
)

type ReviewHandler struct {
	reviewSvc ReviewServiceInterface
}

func NewReviewHandler(reviewSvc ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewSvc: reviewSvc,
	}
}

// @Summary Add Review
// @Description Append a scored review to the caller's wallet log
// @Tags wallet
// @Accept json
// @Produce json
// @Param reviewRequest body dto.CreateReviewRequest true "Review"
// @Success 201 {object} shared.Response{data=model.Review}
// @Router /api/v1/wallet/reviews [post]
func (h *ReviewHandler) AddReview(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	review, err := h.reviewSvc.AddReview(c.Context(), requestSubject(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Review added", review)
}

// @Summary Get Wallet
// @Description Get the review log and the derived balance
// @Tags wallet
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.WalletResponse}
// @Router /api/v1/wallet [get]
func (h *ReviewHandler) GetWallet(c *fiber.Ctx) error {
	wallet, err := h.reviewSvc.GetWallet(c.Context(), requestSubject(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", wallet)
}
