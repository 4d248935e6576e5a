package dto

import "github.com/kids-in-business/kib_api/model"

type CreateReviewRequest struct {
	Score int    `json:"score" validate:"required,min=1,max=10"`
	Note  string `json:"note" validate:"max=500"`
}

func (r CreateReviewRequest) Validate() error {
	return validate.Struct(r)
}

type WalletResponse struct {
	Balance int            `json:"balance"`
	Reviews []model.Review `json:"reviews"`
}
