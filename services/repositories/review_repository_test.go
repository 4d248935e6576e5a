package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kids-in-business/kib_api/model"
)

func TestAppendAssignsSequentialIDs(t *testing.T) {
	repo := NewReviewRepository(newMemKV())
	ctx := context.Background()

	first, err := repo.Append(ctx, "device:abc", model.Review{Score: 7, Note: "good session", Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.Append(ctx, "device:abc", model.Review{Score: 9, Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	reviews, err := repo.List(ctx, "device:abc")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, first, reviews[0])
	assert.Equal(t, second, reviews[1])
}

func TestListCorruptLogReadsEmpty(t *testing.T) {
	kv := newMemKV()
	repo := NewReviewRepository(kv)

	kv.store["kib:device:abc:kib_reviews"] = `not json`

	reviews, err := repo.List(context.Background(), "device:abc")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewLogsAreScopedPerSubject(t *testing.T) {
	repo := NewReviewRepository(newMemKV())
	ctx := context.Background()

	_, err := repo.Append(ctx, "user:42", model.Review{Score: 5, Date: "2026-08-28"})
	require.NoError(t, err)

	reviews, err := repo.List(ctx, "device:abc")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
