package services

import (
	goContext "context"
	"fmt"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/services/repositories"
	"github.com/kids-in-business/kib_api/shared"
)

type memKV struct {
	store map[string]string
}

func newMemKV() *memKV {
	return &memKV{store: map[string]string{}}
}

func (m *memKV) Get(_ goContext.Context, key string) (string, error) {
	return m.store[key], nil
}

func (m *memKV) Set(_ goContext.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		m.store[key] = string(v)
	case string:
		m.store[key] = v
	default:
		m.store[key] = fmt.Sprintf("%v", v)
	}
	return nil
}

func (m *memKV) Delete(_ goContext.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.store, key)
	}
	return nil
}

func (m *memKV) Keys(_ goContext.Context, pattern string) ([]string, error) {
	var matched []string
	for key := range m.store {
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	return matched, nil
}

type staticCatalog struct {
	activities []model.Activity
}

func (s staticCatalog) Exists(activityID string) (bool, error) {
	for _, activity := range s.activities {
		if activity.ID == activityID {
			return true, nil
		}
	}
	return false, nil
}

func (s staticCatalog) Activities() ([]model.Activity, error) {
	return s.activities, nil
}

func newTestLedger(activities ...model.Activity) *LedgerService {
	return &LedgerService{
		ledgerRepo: repositories.NewLedgerRepository(newMemKV()),
		catalog:    staticCatalog{activities: activities},
	}
}

func miniActivity(id string) model.Activity {
	return model.Activity{ID: id, Slug: id, Title: id, Category: shared.CategoryMini}
}

func TestToggleUnknownActivityRejected(t *testing.T) {
	svc := newTestLedger(miniActivity("mini-1"))

	_, err := svc.Toggle(goContext.Background(), "device:abc", "class-a", "no-such-activity")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestToggleFlipsAndCelebrates(t *testing.T) {
	svc := newTestLedger(miniActivity("mini-1"))
	ctx := goContext.Background()

	result, err := svc.Toggle(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)
	assert.True(t, result.Completed)
	require.NotNil(t, result.Celebration)
	assert.Contains(t, shared.CelebrationMessages, result.Celebration.Message)

	complete, err := svc.IsComplete(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestToggleTwiceRestoresOriginalSet(t *testing.T) {
	svc := newTestLedger(miniActivity("mini-1"), miniActivity("mini-2"))
	ctx := goContext.Background()

	_, err := svc.Toggle(ctx, "device:abc", "class-a", "mini-2")
	require.NoError(t, err)

	result, err := svc.Toggle(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)
	assert.True(t, result.Completed)

	result, err = svc.Toggle(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.Nil(t, result.Celebration)

	set, err := svc.Completions(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"mini-2"}, set.Completed)
}

func TestToggleIsIndependentPerClass(t *testing.T) {
	svc := newTestLedger(miniActivity("mini-1"))
	ctx := goContext.Background()

	_, err := svc.Toggle(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)

	complete, err := svc.IsComplete(ctx, "device:abc", "class-b", "mini-1")
	require.NoError(t, err)
	assert.False(t, complete)
}

func TestRecentKeepsHistoryAfterUntoggle(t *testing.T) {
	svc := newTestLedger(miniActivity("mini-1"), miniActivity("mini-2"))
	ctx := goContext.Background()

	_, err := svc.Toggle(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "device:abc", "class-a", "mini-2")
	require.NoError(t, err)

	// Untoggling removes from the set but not from the history.
	_, err = svc.Toggle(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)

	recent, err := svc.Recent(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	require.Len(t, recent.Activities, 2)
	assert.Equal(t, "mini-1", recent.Activities[0].ID)
	assert.Equal(t, "mini-2", recent.Activities[1].ID)
}

func TestRecentDropsDeletedActivities(t *testing.T) {
	kv := newMemKV()
	repo := repositories.NewLedgerRepository(kv)
	svc := &LedgerService{
		ledgerRepo: repo,
		catalog:    staticCatalog{activities: []model.Activity{miniActivity("mini-2")}},
	}
	ctx := goContext.Background()

	require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", "mini-1"))
	require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", "mini-2"))

	recent, err := svc.Recent(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	require.Len(t, recent.Activities, 1)
	assert.Equal(t, "mini-2", recent.Activities[0].ID)
}

func TestResetAllWipesEveryGivenClass(t *testing.T) {
	svc := newTestLedger(miniActivity("mini-1"))
	ctx := goContext.Background()

	_, err := svc.Toggle(ctx, "device:abc", "class-a", "mini-1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "device:abc", "class-b", "mini-1")
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(ctx, "device:abc", []string{"class-a", "class-b"}))

	for _, classID := range []string{"class-a", "class-b"} {
		set, err := svc.Completions(ctx, "device:abc", classID)
		require.NoError(t, err)
		assert.Empty(t, set.Completed)

		recent, err := svc.Recent(ctx, "device:abc", classID)
		require.NoError(t, err)
		assert.Empty(t, recent.Activities)
	}
}
