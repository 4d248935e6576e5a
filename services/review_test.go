package services

import (
	goContext "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/services/repositories"
)

func newTestReviewService() *ReviewService {
	return &ReviewService{
		reviewRepo: repositories.NewReviewRepository(newMemKV()),
	}
}

func TestWalletBalanceIsTenPerPoint(t *testing.T) {
	assert.Equal(t, 0, WalletBalance(nil))
	assert.Equal(t, 0, WalletBalance([]model.Review{}))
	assert.Equal(t, 70, WalletBalance([]model.Review{{Score: 7}}))
	assert.Equal(t, 170, WalletBalance([]model.Review{{Score: 7}, {Score: 10}}))
}

func TestAddReviewTrimsNoteAndStampsDate(t *testing.T) {
	svc := newTestReviewService()

	review, err := svc.AddReview(goContext.Background(), "device:abc", dto.CreateReviewRequest{
		Score: 8,
		Note:  "  great pitch  ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.ID)
	assert.Equal(t, "great pitch", review.Note)
	assert.NotEmpty(t, review.Date)
}

func TestWalletAccumulatesAcrossReviews(t *testing.T) {
	svc := newTestReviewService()
	ctx := goContext.Background()

	for _, score := range []int{3, 5, 10} {
		_, err := svc.AddReview(ctx, "device:abc", dto.CreateReviewRequest{Score: score})
		require.NoError(t, err)
	}

	wallet, err := svc.GetWallet(ctx, "device:abc")
	require.NoError(t, err)
	assert.Equal(t, 180, wallet.Balance)
	require.Len(t, wallet.Reviews, 3)
	assert.Equal(t, int64(3), wallet.Reviews[2].ID)
}
