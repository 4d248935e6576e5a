package services

import (
	goContext "context"
	"strings"
	"time"

	"github.com/alphabatem/common/context"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/services/repositories"
	"github.com/kids-in-business/kib_api/shared"
)

// ReviewService keeps the mentor wallet: an append-only review log whose
// balance is derived, never stored.
type ReviewService struct {
	context.DefaultService

	reviewRepo *repositories.ReviewRepository
}

const REVIEW_SVC = "review_svc"

func (svc ReviewService) Id() string {
	return REVIEW_SVC
}

func (svc *ReviewService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ReviewService) Start() error {
	redisSvc := svc.Service(REDIS_SVC).(*RedisService)
	svc.reviewRepo = repositories.NewReviewRepository(redisSvc)
	return nil
}

func (svc *ReviewService) AddReview(ctx goContext.Context, subject string, req dto.CreateReviewRequest) (*model.Review, error) {
	review := model.Review{
		Score: req.Score,
		Note:  strings.TrimSpace(req.Note),
		Date:  time.Now().Format("2006-01-02"),
	}

	created, err := svc.reviewRepo.Append(ctx, subject, review)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to save review")
	}
	return &created, nil
}

// GetWallet returns the review log with the derived balance:
// sum(score * 10) over every review.
func (svc *ReviewService) GetWallet(ctx goContext.Context, subject string) (*dto.WalletResponse, error) {
	reviews, err := svc.reviewRepo.List(ctx, subject)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load reviews")
	}

	return &dto.WalletResponse{
		Balance: WalletBalance(reviews),
		Reviews: reviews,
	}, nil
}

// WalletBalance derives the balance from the review log.
func WalletBalance(reviews []model.Review) int {
	balance := 0
	for _, review := range reviews {
		balance += review.Score * 10
	}
	return balance
}
