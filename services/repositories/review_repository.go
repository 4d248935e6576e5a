package repositories

import (
	"context"
	"encoding/json"

	"github.com/kids-in-business/kib_api/model"
)

// ReviewRepository stores the mentor review log under kib_reviews. The log
// is append-only: entries are never rewritten or removed.
type ReviewRepository struct {
	kv KV
}

func NewReviewRepository(kv KV) *ReviewRepository {
	return &ReviewRepository{kv: kv}
}

func (r *ReviewRepository) List(ctx context.Context, subject string) ([]model.Review, error) {
	raw, err := r.kv.Get(ctx, subjectKey(subject, reviewsKey))
	if err != nil {
		return nil, err
	}

	reviews := []model.Review{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
			reviews = []model.Review{}
		}
	}
	return reviews, nil
}

func (r *ReviewRepository) Append(ctx context.Context, subject string, review model.Review) (model.Review, error) {
	reviews, err := r.List(ctx, subject)
	if err != nil {
		return model.Review{}, err
	}

	var maxID int64
	for _, existing := range reviews {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	review.ID = maxID + 1
	reviews = append(reviews, review)

	data, err := json.Marshal(reviews)
	if err != nil {
		return model.Review{}, err
	}
	if err := r.kv.Set(ctx, subjectKey(subject, reviewsKey), data, 0); err != nil {
		return model.Review{}, err
	}
	return review, nil
}
